package handler

import (
	"context"

	"wallet-admin-console/internal/adapter/http/dto"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
)

// RateHandler handles exchange rate configuration.
type RateHandler struct {
	rateSvc ports.ExchangeRateService
	hub     *view.Hub
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateSvc ports.ExchangeRateService, hub *view.Hub) *RateHandler {
	return &RateHandler{rateSvc: rateSvc, hub: hub}
}

// List handles GET /api/v1/exchange-rates.
func (h *RateHandler) List(c *gin.Context) {
	fetch := func(ctx context.Context, _ struct{}) ([]domain.ExchangeRate, error) {
		return h.rateSvc.List(ctx)
	}
	rates, state, err := loadView(c, h.hub, "exchange_rates", fetch, listEmpty[domain.ExchangeRate], struct{}{})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewListResponse(rates, state))
}

// Create handles POST /api/v1/exchange-rates and returns the refreshed list.
func (h *RateHandler) Create(c *gin.Context) {
	var req dto.ExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}

	rates, err := h.rateSvc.Create(c.Request.Context(), req.FromCurrency, req.Rate)
	if err != nil {
		response.Error(c, err)
		return
	}

	state := view.PresentationReady
	if len(rates) == 0 {
		state = view.PresentationEmpty
	}
	response.Created(c, dto.NewListResponse(rates, state))
}
