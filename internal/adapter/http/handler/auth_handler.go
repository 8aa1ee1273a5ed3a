package handler

import (
	"context"

	"wallet-admin-console/internal/adapter/http/dto"
	"wallet-admin-console/internal/adapter/http/middleware"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles sign-in, sign-out and the session's display currency.
type AuthHandler struct {
	authSvc     ports.AuthService
	currencySvc ports.CurrencyService
	hub         *view.Hub
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService, currencySvc ports.CurrencyService, hub *view.Hub) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, currencySvc: currencySvc, hub: hub}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// lets the audit trail attribute the sign-in
	c.Set(middleware.CtxSession, result.Session)

	response.OK(c, dto.LoginResponse{
		Token:   result.Token,
		Expiry:  result.ExpiresAt.Unix(),
		Session: dto.ToSessionResponse(result.Session),
	})
}

// Logout handles POST /api/v1/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), session.ID); err != nil {
		response.Error(c, err)
		return
	}
	h.hub.Drop(session.ID.String())

	response.OK(c, gin.H{"signed_out": true})
}

// Me handles GET /api/v1/session.
func (h *AuthHandler) Me(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToSessionResponse(session))
}

// Currencies handles GET /api/v1/currencies.
func (h *AuthHandler) Currencies(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	available := func(ctx context.Context, _ struct{}) ([]domain.DisplayCurrency, error) {
		return h.currencySvc.Available(ctx)
	}
	items, state, err := loadView(c, h.hub, "currencies", available, listEmpty[domain.DisplayCurrency], struct{}{})
	if err != nil {
		response.Error(c, err)
		return
	}

	selected := session.DisplayCurrency
	if selected == "" {
		selected = domain.BaseCurrency
	}
	response.OK(c, dto.CurrenciesResponse{
		ListResponse: dto.NewListResponse(items, state),
		Selected:     selected,
	})
}

// SelectCurrency handles PUT /api/v1/session/currency.
func (h *AuthHandler) SelectCurrency(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.CurrencySelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	selected, err := h.currencySvc.Select(c.Request.Context(), session.ID, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, selected)
}
