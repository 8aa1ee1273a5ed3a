package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the only quote currency the backend supports.
const BaseCurrency = "USD"

// ExchangeRate is a configured rate from a local currency to USD.
// Rate is the amount of USD one unit of FromCurrency buys.
type ExchangeRate struct {
	ID           int64           `json:"id"`
	FromCurrency string          `json:"from_currency"`
	ToCurrency   string          `json:"to_currency"`
	Rate         decimal.Decimal `json:"rate"`
	IsActive     bool            `json:"is_active"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DisplayValue is the multiplier that converts a USD amount into FromCurrency.
func (r ExchangeRate) DisplayValue() decimal.Decimal {
	if r.Rate.Sign() <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).DivRound(r.Rate, 8)
}

// NormalizeCurrencyCode trims, uppercases and keeps at most three characters.
func NormalizeCurrencyCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	runes := []rune(code)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes)
}

// IsCurrencyCode reports whether code is exactly three ASCII uppercase letters.
func IsCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
