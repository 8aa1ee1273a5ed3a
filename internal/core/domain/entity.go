package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// User is the full upstream user record behind the courier and customer pages.
type User struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Username     string           `json:"username,omitempty"`
	Email        string           `json:"email,omitempty"`
	Phone        string           `json:"phone,omitempty"`
	Role         string           `json:"role,omitempty"`
	Status       string           `json:"status,omitempty"`
	VehicleType  string           `json:"vehicle_type,omitempty"`
	LicensePlate string           `json:"license_plate,omitempty"`
	TotalSpent   *decimal.Decimal `json:"total_spent,omitempty"`
	TotalOrders  int64            `json:"total_orders,omitempty"`

	IsWalletSeller       bool   `json:"is_wallet_seller"`
	WalletSellerWhatsApp string `json:"wallet_seller_whatsapp,omitempty"`
}

// CourierUpdate is the editable subset of a courier.
type CourierUpdate struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicle_type"`
	LicensePlate string `json:"license_plate"`
	Status       string `json:"status"`
}

// CustomerUpdate is the editable subset of a customer.
type CustomerUpdate struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// OrderItem is a line of an order.
type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// Order statuses an order may still be assigned to a courier from.
const (
	OrderStatusPending   = "pending"
	OrderStatusValidated = "validated"
)

// Order is an upstream order. Totals are USD.
type Order struct {
	ID               int64           `json:"id"`
	TrackingCode     string          `json:"tracking_code"`
	Status           string          `json:"status"`
	Total            decimal.Decimal `json:"total"`
	Customer         string          `json:"customer,omitempty"`
	Items            []OrderItem     `json:"items,omitempty"`
	DeliveryPersonID *int64          `json:"delivery_person_id,omitempty"`
	DeliveryNotes    string          `json:"delivery_notes,omitempty"`
}

// Assignable reports whether a courier may still be assigned.
func (o *Order) Assignable() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusValidated
}

// DeliveryPerson is an entry of the courier roster.
type DeliveryPerson struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone,omitempty"`
	VehicleType string `json:"vehicle_type,omitempty"`
	Status      string `json:"status,omitempty"`
}

// DeliveryAssignment assigns a courier to an order.
type DeliveryAssignment struct {
	DeliveryPersonID int64  `json:"delivery_person_id"`
	Address          string `json:"address,omitempty"`
	Notes            string `json:"notes,omitempty"`
}

// StockExit is a warehouse stock movement out.
type StockExit struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference,omitempty"`
	Product     string    `json:"product"`
	SKU         string    `json:"sku"`
	Quantity    int64     `json:"quantity"`
	Destination string    `json:"destination"`
	Reason      string    `json:"reason,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Status is the human status derived from the exit reason.
func (e *StockExit) Status() string {
	switch e.Reason {
	case "sale":
		return "Delivered"
	case "":
		return "Completed"
	}
	return e.Reason
}

// DisplayReference falls back to a synthetic reference when none is set.
func (e *StockExit) DisplayReference() string {
	if e.Reference != "" {
		return e.Reference
	}
	return fmt.Sprintf("#EXT-%d", e.ID)
}

// OperationalStats is the admin dashboard counters blob, passed through as-is.
type OperationalStats map[string]any
