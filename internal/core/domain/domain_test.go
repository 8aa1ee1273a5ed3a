package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestPin_CanRefund(t *testing.T) {
	tests := []struct {
		name   string
		status PinStatus
		want   bool
	}{
		{"active", PinStatusActive, true},
		{"expired", PinStatusExpired, true},
		{"used", PinStatusUsed, false},
		{"refunded", PinStatusRefunded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Pin{Status: tt.status}
			assert.Equal(t, tt.want, p.CanRefund())
		})
	}
}

func TestParsePinStatus(t *testing.T) {
	st, ok := ParsePinStatus("expired")
	assert.True(t, ok)
	assert.Equal(t, PinStatusExpired, st)

	_, ok = ParsePinStatus("EXPIRED")
	assert.False(t, ok)
	_, ok = ParsePinStatus("")
	assert.False(t, ok)
}

func TestRechargeTarget_Valid(t *testing.T) {
	tests := []struct {
		name   string
		target RechargeTarget
		want   bool
	}{
		{"wallet only", RechargeTarget{WalletID: ptr(int64(7))}, true},
		{"user only", RechargeTarget{UserID: ptr(int64(3))}, true},
		{"neither", RechargeTarget{}, false},
		{"both", RechargeTarget{WalletID: ptr(int64(7)), UserID: ptr(int64(3))}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.target.Valid())
		})
	}
}

func TestNormalizeCurrencyCode(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"xaf", "XAF"},
		{"  ngn ", "NGN"},
		{"euro", "EUR"},
		{"x", "X"},
		{"", ""},
		{"fçfa", "FÇF"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCurrencyCode(tt.raw))
		})
	}
}

func TestIsCurrencyCode(t *testing.T) {
	assert.True(t, IsCurrencyCode("XAF"))
	assert.False(t, IsCurrencyCode("XA"))
	assert.False(t, IsCurrencyCode("XAFX"))
	assert.False(t, IsCurrencyCode("X4F"))
	assert.False(t, IsCurrencyCode("xaf"))
	assert.False(t, IsCurrencyCode(NormalizeCurrencyCode("fçfa")))
}

func TestExchangeRate_DisplayValue(t *testing.T) {
	r := ExchangeRate{FromCurrency: "XAF", ToCurrency: BaseCurrency, Rate: decimal.RequireFromString("0.0016")}
	assert.True(t, decimal.NewFromInt(625).Equal(r.DisplayValue()))

	assert.True(t, ExchangeRate{}.DisplayValue().IsZero())
}

func TestPageRequest_Normalization(t *testing.T) {
	tests := []struct {
		name          string
		page, perPage int
		want          PageRequest
	}{
		{"defaults", 0, 0, PageRequest{Page: 1, PerPage: DefaultWalletsPerPage}},
		{"negative page", -3, 10, PageRequest{Page: 1, PerPage: 10}},
		{"capped", 2, 500, PageRequest{Page: 2, PerPage: MaxPerPage}},
		{"kept", 4, 50, PageRequest{Page: 4, PerPage: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageRequest(tt.page, tt.perPage, DefaultWalletsPerPage))
		})
	}
}

func TestPagination_RoundTrip(t *testing.T) {
	for page := 1; page <= 50; page++ {
		req := NewPageRequest(page, 20, DefaultWalletsPerPage)
		assert.Equal(t, page-1, req.Index())
		assert.Equal(t, page, PageFromIndex(req.Index()))
	}
}

func TestPage_Derived(t *testing.T) {
	p := Page[Wallet]{Items: []Wallet{{ID: 1}}, Total: 41, Page: 3, PerPage: 20}
	assert.Equal(t, 2, p.PageIndex())
	assert.Equal(t, 3, p.TotalPages())
	assert.False(t, p.Empty())

	assert.True(t, Page[Wallet]{}.Empty())
	assert.Equal(t, 0, Page[Wallet]{Total: 10}.TotalPages())
}

func TestFormatAmount(t *testing.T) {
	usd := decimal.NewFromInt(42)

	tests := []struct {
		name     string
		currency DisplayCurrency
		want     string
	}{
		{"fcfa rounds to integer", DisplayCurrency{Code: "XAF", Symbol: "FCFA", Value: decimal.NewFromInt(600)}, "25200 FCFA"},
		{"naira rounds to integer", DisplayCurrency{Code: "NGN", Symbol: "₦", Value: decimal.RequireFromString("1500.55")}, "63023 ₦"},
		{"usd two decimals", USD, "$42.00"},
		{"euro two decimals", DisplayCurrency{Code: "EUR", Symbol: "€", Value: decimal.RequireFromString("0.9215")}, "€38.70"},
		{"missing symbol falls back to usd", DisplayCurrency{}, "$42.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(usd, tt.currency))
		})
	}
}

func TestUserRef_DisplayName(t *testing.T) {
	assert.Equal(t, "Awa", UserRef{Name: "Awa", Username: "awa91"}.DisplayName())
	assert.Equal(t, "awa91", UserRef{Username: "awa91"}.DisplayName())
}

func TestSession_Helpers(t *testing.T) {
	now := time.Now()
	s := &Session{UserID: 12, AccessExpiresAt: now.Add(time.Minute)}
	assert.True(t, s.HasUser())
	assert.False(t, s.AccessExpired(now))
	assert.True(t, s.AccessExpired(now.Add(2*time.Minute)))

	assert.False(t, (&Session{}).HasUser())
}

func TestOrder_Assignable(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusPending}).Assignable())
	assert.True(t, (&Order{Status: OrderStatusValidated}).Assignable())
	assert.False(t, (&Order{Status: "delivered"}).Assignable())
}

func TestStockExit_Derived(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{"sale", "Delivered"},
		{"", "Completed"},
		{"damaged", "damaged"},
	}
	for _, tt := range tests {
		e := &StockExit{ID: 9, Reason: tt.reason}
		assert.Equal(t, tt.want, e.Status())
	}

	assert.Equal(t, "#EXT-9", (&StockExit{ID: 9}).DisplayReference())
	assert.Equal(t, "SE-001", (&StockExit{ID: 9, Reference: "SE-001"}).DisplayReference())
}
