package dto

import (
	"github.com/shopspring/decimal"
)

// LoginRequest is the request body for admin sign-in. Credentials are
// forwarded untouched, so it is never sanitized.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,max=254"`
	Password string `json:"password" binding:"required,max=128"`
}

// CurrencySelectRequest selects the session display currency.
type CurrencySelectRequest struct {
	Code string `json:"code" binding:"required,currency_code"`
}

// RechargeRequest credits either a wallet or a user's wallet, never both.
type RechargeRequest struct {
	WalletID *int64          `json:"wallet_id,omitempty" binding:"omitempty,gt=0"`
	UserID   *int64          `json:"user_id,omitempty" binding:"omitempty,gt=0"`
	Amount   decimal.Decimal `json:"amount" binding:"decimal_gt0"`
}

// AmountRequest is the body of own-wallet recharges and treasury generation.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"decimal_gt0"`
}

// ExchangeRateRequest configures FromCurrency -> USD.
type ExchangeRateRequest struct {
	FromCurrency string          `json:"from_currency" binding:"required,currency_code"`
	Rate         decimal.Decimal `json:"rate" binding:"decimal_gt0"`
}

// SellerContactRequest carries the WhatsApp contact of a wallet seller.
// Emptiness is checked by the seller service so the rejection message is
// the same for every entry point.
type SellerContactRequest struct {
	WhatsApp string `json:"whatsapp" binding:"max=32"`
}

// PinRefundRequest is the optional body of a PIN refund.
type PinRefundRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// CourierUpdateRequest is the delivery person edit form.
type CourierUpdateRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Phone        string `json:"phone" binding:"max=32"`
	VehicleType  string `json:"vehicle_type" binding:"max=50"`
	LicensePlate string `json:"license_plate" binding:"max=20"`
	Status       string `json:"status" binding:"required,max=30"`
}

// CustomerUpdateRequest is the customer edit form.
type CustomerUpdateRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"omitempty,email"`
	Phone  string `json:"phone" binding:"max=32"`
	Status string `json:"status" binding:"required,max=30"`
}

// OrderStatusRequest moves an order to a new status.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,max=30"`
}

// DeliverySaveRequest is the delivery edit form. DeliveryPersonID is
// optional; without it only the status is saved.
type DeliverySaveRequest struct {
	Status           string `json:"status" binding:"required,max=30"`
	DeliveryPersonID *int64 `json:"delivery_person_id,omitempty" binding:"omitempty,gt=0"`
	Address          string `json:"address" binding:"max=255"`
	Notes            string `json:"notes" binding:"max=500"`
}
