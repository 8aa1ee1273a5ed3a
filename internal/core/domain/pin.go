package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PinStatus is the lifecycle state of a prepaid PIN.
type PinStatus string

const (
	PinStatusActive   PinStatus = "active"
	PinStatusUsed     PinStatus = "used"
	PinStatusExpired  PinStatus = "expired"
	PinStatusRefunded PinStatus = "refunded"
)

// ParsePinStatus accepts only the four known statuses.
func ParsePinStatus(s string) (PinStatus, bool) {
	switch st := PinStatus(s); st {
	case PinStatusActive, PinStatusUsed, PinStatusExpired, PinStatusRefunded:
		return st, true
	}
	return "", false
}

// Pin is a prepaid code generated by a wallet seller.
type Pin struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Seller     *UserRef        `json:"seller,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	AmountUsed decimal.Decimal `json:"amount_used"`
	Status     PinStatus       `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CanRefund reports whether the admin may trigger a manual refund.
// Refunded is terminal; used PINs were consumed.
func (p *Pin) CanRefund() bool {
	return p.Status == PinStatusActive || p.Status == PinStatusExpired
}
