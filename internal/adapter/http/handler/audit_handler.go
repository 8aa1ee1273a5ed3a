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
)

// AuditHandler exposes the admin audit trail.
type AuditHandler struct {
	auditSvc ports.AuditService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditSvc ports.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// List handles GET /api/v1/audit-logs.
func (h *AuditHandler) List(c *gin.Context) {
	req := pageQuery(c)
	req = domain.NewPageRequest(req.Page, req.PerPage, domain.DefaultWalletsPerPage)

	params := ports.AuditListParams{Page: req.Page, PageSize: req.PerPage}
	if raw := c.Query("admin_user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, apperror.Validation("Invalid admin user id"))
			return
		}
		params.AdminUserID = &id
	}
	if raw := c.Query("action"); raw != "" {
		action := domain.AuditAction(raw)
		params.Action = &action
	}

	logs, total, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	page := &domain.Page[domain.AuditLog]{Items: logs, Total: total, Page: req.Page, PerPage: req.PerPage}
	state := view.PresentationReady
	if page.Empty() {
		state = view.PresentationEmpty
	}
	response.OK(c, dto.NewPageResponse(page, state, func(l *domain.AuditLog) domain.AuditLog { return *l }))
}
