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

// SellerHandler handles wallet seller eligibility.
type SellerHandler struct {
	sellerSvc ports.SellerService
	hub       *view.Hub
}

// NewSellerHandler creates a new SellerHandler.
func NewSellerHandler(sellerSvc ports.SellerService, hub *view.Hub) *SellerHandler {
	return &SellerHandler{sellerSvc: sellerSvc, hub: hub}
}

type sellerQuery struct {
	Page   domain.PageRequest
	Search string
}

func (h *SellerHandler) fetch(ctx context.Context, q sellerQuery) (*domain.Page[domain.EligibleSeller], error) {
	return h.sellerSvc.ListEligible(ctx, q.Page, q.Search)
}

// ListEligible handles GET /api/v1/sellers.
func (h *SellerHandler) ListEligible(c *gin.Context) {
	q := sellerQuery{Page: pageQuery(c), Search: c.Query("search")}
	page, state, err := loadView(c, h.hub, "sellers", h.fetch, pageEmpty[domain.EligibleSeller], q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPageResponse(page, state, func(s *domain.EligibleSeller) domain.EligibleSeller { return *s }))
}

// Activate handles POST /api/v1/sellers/:id/activate.
func (h *SellerHandler) Activate(c *gin.Context) {
	userID, req, ok := h.contactInput(c)
	if !ok {
		return
	}
	change, err := h.sellerSvc.Activate(c.Request.Context(), userID, req.WhatsApp)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, change)
}

// Deactivate handles POST /api/v1/sellers/:id/deactivate.
func (h *SellerHandler) Deactivate(c *gin.Context) {
	userID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	change, err := h.sellerSvc.Deactivate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, change)
}

// UpdateContact handles PUT /api/v1/sellers/:id/contact.
func (h *SellerHandler) UpdateContact(c *gin.Context) {
	userID, req, ok := h.contactInput(c)
	if !ok {
		return
	}
	change, err := h.sellerSvc.UpdateContact(c.Request.Context(), userID, req.WhatsApp)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, change)
}

func (h *SellerHandler) contactInput(c *gin.Context) (int64, dto.SellerContactRequest, bool) {
	var req dto.SellerContactRequest
	userID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return 0, req, false
	}
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, bindError(err))
		return 0, req, false
	}
	dto.SanitizeStruct(&req)
	return userID, req, true
}
