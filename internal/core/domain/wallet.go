package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRef is the compact user record embedded in wallets, PINs and seller rows.
type UserRef struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// DisplayName prefers the full name and falls back to the username.
func (u UserRef) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Wallet is an upstream wallet. Balance is in USD and is always the value
// reported by the backend; it is never recomputed locally.
type Wallet struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id,omitempty"`
	User     *UserRef        `json:"user,omitempty"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// WalletTransaction is a single wallet movement as listed on the audit page.
type WalletTransaction struct {
	ID           int64           `json:"id"`
	WalletID     int64           `json:"wallet_id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RechargeTarget identifies the wallet to credit. Exactly one field is set.
type RechargeTarget struct {
	WalletID *int64
	UserID   *int64
}

// Valid reports whether exactly one of WalletID and UserID is set.
func (t RechargeTarget) Valid() bool {
	return (t.WalletID != nil) != (t.UserID != nil)
}
