package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type auditRoute struct {
	method string
	path   string
}

type auditTarget struct {
	action       domain.AuditAction
	resourceType string
}

// auditedRoutes maps route templates to audit actions.
var auditedRoutes = map[auditRoute]auditTarget{
	{http.MethodPost, "/api/v1/auth/login"}:               {domain.AuditActionLogin, "session"},
	{http.MethodPost, "/api/v1/auth/logout"}:              {domain.AuditActionLogout, "session"},
	{http.MethodPut, "/api/v1/session/currency"}:          {domain.AuditActionCurrencySelect, "session"},
	{http.MethodPost, "/api/v1/wallets/recharge"}:         {domain.AuditActionRecharge, "wallet"},
	{http.MethodPost, "/api/v1/wallets/balance/recharge"}: {domain.AuditActionRecharge, "wallet"},
	{http.MethodPost, "/api/v1/wallets/treasury"}:         {domain.AuditActionTreasury, "wallet"},
	{http.MethodPost, "/api/v1/exchange-rates"}:           {domain.AuditActionExchangeRate, "exchange_rate"},
	{http.MethodPost, "/api/v1/sellers/:id/activate"}:     {domain.AuditActionSellerActivate, "user"},
	{http.MethodPost, "/api/v1/sellers/:id/deactivate"}:   {domain.AuditActionSellerDeactivate, "user"},
	{http.MethodPut, "/api/v1/sellers/:id/contact"}:       {domain.AuditActionSellerContact, "user"},
	{http.MethodPost, "/api/v1/pins/:id/refund"}:          {domain.AuditActionPinRefund, "pin"},
	{http.MethodPut, "/api/v1/couriers/:id"}:              {domain.AuditActionUserUpdate, "user"},
	{http.MethodPut, "/api/v1/customers/:id"}:             {domain.AuditActionUserUpdate, "user"},
	{http.MethodPut, "/api/v1/orders/:id/status"}:         {domain.AuditActionOrderStatus, "order"},
	{http.MethodPut, "/api/v1/deliveries/:id"}:            {domain.AuditActionDeliveryUpdate, "order"},
}

// AuditLog records successful admin mutations after the response is written.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		target, ok := auditedRoutes[auditRoute{c.Request.Method, c.FullPath()}]
		if !ok {
			return
		}

		var adminUserID *int64
		if s, ok := CurrentSession(c); ok && s.HasUser() {
			id := s.UserID
			adminUserID = &id
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(CtxRequestID),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			AdminUserID:  adminUserID,
			Action:       target.action,
			ResourceType: target.resourceType,
			ResourceID:   c.Param("id"),
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}
