package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited admin action.
type AuditAction string

const (
	AuditActionLogin            AuditAction = "LOGIN"
	AuditActionLogout           AuditAction = "LOGOUT"
	AuditActionRecharge         AuditAction = "WALLET_RECHARGE"
	AuditActionTreasury         AuditAction = "TREASURY_GENERATE"
	AuditActionExchangeRate     AuditAction = "EXCHANGE_RATE_SET"
	AuditActionSellerActivate   AuditAction = "SELLER_ACTIVATE"
	AuditActionSellerDeactivate AuditAction = "SELLER_DEACTIVATE"
	AuditActionSellerContact    AuditAction = "SELLER_CONTACT"
	AuditActionPinRefund        AuditAction = "PIN_REFUND"
	AuditActionUserUpdate       AuditAction = "USER_UPDATE"
	AuditActionOrderStatus      AuditAction = "ORDER_STATUS"
	AuditActionDeliveryUpdate   AuditAction = "DELIVERY_UPDATE"
	AuditActionCurrencySelect   AuditAction = "CURRENCY_SELECT"
)

// AuditLog records a single admin mutation.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	AdminUserID  *int64      `json:"admin_user_id,omitempty"`
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
