package handler

import (
	"strconv"

	"wallet-admin-console/internal/adapter/http/dto"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/apperror"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const pinsView = "pins"

// PinHandler handles PIN listing and manual refunds.
type PinHandler struct {
	pinSvc ports.PinService
	hub    *view.Hub
	log    zerolog.Logger
}

// NewPinHandler creates a new PinHandler.
func NewPinHandler(pinSvc ports.PinService, hub *view.Hub, log zerolog.Logger) *PinHandler {
	return &PinHandler{pinSvc: pinSvc, hub: hub, log: log}
}

func (h *PinHandler) source(c *gin.Context, session *domain.Session) *view.Source[ports.PinFilter, *domain.Page[domain.Pin]] {
	return viewSource(c, h.hub, session, pinsView, h.pinSvc.List, pageEmpty[domain.Pin])
}

// List handles GET /api/v1/pins. Changing the seller or status filter
// starts again from page 1.
func (h *PinHandler) List(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	filter := ports.PinFilter{
		Page:   pageQuery(c),
		Status: domain.PinStatus(c.Query("status")),
	}
	if raw := c.Query("seller_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, apperror.Validation("Invalid seller id"))
			return
		}
		filter.SellerID = &id
	}

	src := h.source(c, session)
	if prev, ok := src.Params(); ok && !sameFilter(prev, filter) {
		filter.Page.Page = 1
	}

	page, err := src.Load(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPageResponse(page, src.Snapshot().Presentation(), dto.ToPinResponse))
}

// Refund handles POST /api/v1/pins/:id/refund. On success the session's
// PIN list is reloaded and returned with the outcome.
func (h *PinHandler) Refund(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	pinID, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PinRefundRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.pinSvc.Refund(c.Request.Context(), pinID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.PinRefundResponse{PinID: pinID}
	src := h.source(c, session)
	if page, err := src.Reload(c.Request.Context()); err != nil {
		h.log.Warn().Err(err).Int64("pin_id", pinID).Msg("PIN list reload after refund failed")
	} else {
		pins := dto.NewPageResponse(page, src.Snapshot().Presentation(), dto.ToPinResponse)
		resp.Pins = &pins
	}
	response.OK(c, resp)
}

func sameFilter(a, b ports.PinFilter) bool {
	if a.Status != b.Status {
		return false
	}
	if a.SellerID == nil || b.SellerID == nil {
		return a.SellerID == nil && b.SellerID == nil
	}
	return *a.SellerID == *b.SellerID
}
