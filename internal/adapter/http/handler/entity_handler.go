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

// EntityHandler backs the courier, customer, order, delivery and stock
// exit pages.
type EntityHandler struct {
	entitySvc   ports.EntityService
	currencySvc ports.CurrencyService
	hub         *view.Hub
}

// NewEntityHandler creates a new EntityHandler.
func NewEntityHandler(entitySvc ports.EntityService, currencySvc ports.CurrencyService, hub *view.Hub) *EntityHandler {
	return &EntityHandler{entitySvc: entitySvc, currencySvc: currencySvc, hub: hub}
}

type orderQuery struct {
	Page           domain.PageRequest
	AssignableOnly bool
}

type orderDetailQuery struct {
	ID       int64
	Currency domain.DisplayCurrency
}

func (h *EntityHandler) GetCourier(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.entitySvc.GetCourier(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

func (h *EntityHandler) UpdateCourier(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CourierUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	update := domain.CourierUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		VehicleType:  req.VehicleType,
		LicensePlate: req.LicensePlate,
		Status:       req.Status,
	}
	if err := h.entitySvc.UpdateCourier(c.Request.Context(), id, update); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, update)
}

func (h *EntityHandler) GetCustomer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.entitySvc.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

func (h *EntityHandler) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	update := domain.CustomerUpdate{Name: req.Name, Email: req.Email, Phone: req.Phone, Status: req.Status}
	if err := h.entitySvc.UpdateCustomer(c.Request.Context(), id, update); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, update)
}

// ListOrders handles GET /api/v1/orders. assignable=true keeps only orders
// a courier can still be assigned to.
func (h *EntityHandler) ListOrders(c *gin.Context) {
	fetch := func(ctx context.Context, q orderQuery) (*domain.Page[domain.Order], error) {
		return h.entitySvc.ListOrders(ctx, q.Page, q.AssignableOnly)
	}
	q := orderQuery{Page: pageQuery(c), AssignableOnly: c.Query("assignable") == "true"}

	page, state, err := loadView(c, h.hub, "orders", fetch, pageEmpty[domain.Order], q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewPageResponse(page, state, func(o *domain.Order) domain.Order { return *o }))
}

// GetOrder handles GET /api/v1/orders/:id with amounts in the session currency.
func (h *EntityHandler) GetOrder(c *gin.Context) {
	session, err := currentSession(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	fetch := func(ctx context.Context, q orderDetailQuery) (*ports.OrderDetail, error) {
		return h.entitySvc.GetOrder(ctx, q.ID, q.Currency)
	}
	q := orderDetailQuery{ID: id, Currency: h.currencySvc.Resolve(c.Request.Context(), session.DisplayCurrency)}

	detail, _, err := loadView(c, h.hub, "order", fetch, nil, q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToOrderResponse(detail))
}

func (h *EntityHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.entitySvc.UpdateOrderStatus(c.Request.Context(), id, req.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "status": req.Status})
}

// GetDelivery handles GET /api/v1/deliveries/:id.
func (h *EntityHandler) GetDelivery(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	edit, err := h.entitySvc.GetDeliveryEdit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if edit.Personnel == nil {
		edit.Personnel = []domain.DeliveryPerson{}
	}
	response.OK(c, edit)
}

// SaveDelivery handles PUT /api/v1/deliveries/:id.
func (h *EntityHandler) SaveDelivery(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.DeliverySaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindError(err))
		return
	}
	dto.SanitizeStruct(&req)

	err = h.entitySvc.SaveDelivery(c.Request.Context(), id, ports.DeliverySave{
		Status:           req.Status,
		DeliveryPersonID: req.DeliveryPersonID,
		Address:          req.Address,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id, "status": req.Status, "delivery_person_id": req.DeliveryPersonID})
}

func (h *EntityHandler) GetStockExit(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	exit, err := h.entitySvc.GetStockExit(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToStockExitResponse(exit))
}

// Stats handles GET /api/v1/stats.
func (h *EntityHandler) Stats(c *gin.Context) {
	stats, err := h.entitySvc.OperationalStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if stats == nil {
		stats = domain.OperationalStats{}
	}
	response.OK(c, stats)
}
