package domain

import (
	"github.com/shopspring/decimal"
)

// DisplayCurrency is a selectable currency for rendering USD amounts.
// Value is the multiplier from USD.
type DisplayCurrency struct {
	Code   string          `json:"code"`
	Symbol string          `json:"symbol"`
	Value  decimal.Decimal `json:"value"`
}

// USD is the identity display currency.
var USD = DisplayCurrency{Code: BaseCurrency, Symbol: "$", Value: decimal.NewFromInt(1)}

// zeroDecimalSymbols render as a rounded integer followed by the symbol.
var zeroDecimalSymbols = map[string]struct{}{
	"FCFA": {},
	"₦":    {},
}

// Convert multiplies a USD amount by the currency value.
func (c DisplayCurrency) Convert(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.Value)
}

// FormatAmount renders a USD amount in the display currency.
// "$42" under {600, "FCFA"} gives "25200 FCFA"; under USD it gives "$42.00".
func FormatAmount(usd decimal.Decimal, c DisplayCurrency) string {
	if c.Symbol == "" {
		c = USD
	}
	converted := c.Convert(usd)
	if _, ok := zeroDecimalSymbols[c.Symbol]; ok {
		return converted.Round(0).String() + " " + c.Symbol
	}
	return c.Symbol + converted.StringFixed(2)
}
