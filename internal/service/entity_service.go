package service

import (
	"context"
	"strings"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var fieldValidator = validator.New()

// EntityServiceImpl implements ports.EntityService. It is thin glue over the
// backend plus the handful of required-field checks the edit forms need.
type EntityServiceImpl struct {
	backend ports.EntityBackend
	log     zerolog.Logger
}

// NewEntityService creates a new EntityServiceImpl.
func NewEntityService(backend ports.EntityBackend, log zerolog.Logger) *EntityServiceImpl {
	return &EntityServiceImpl{backend: backend, log: log}
}

// GetCourier reads the courier's user record. Couriers the user endpoint
// does not know are looked up in the delivery roster.
func (s *EntityServiceImpl) GetCourier(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, apperror.Validation("Invalid courier id")
	}
	user, err := s.backend.GetUser(ctx, id)
	if err == nil {
		return user, nil
	}
	if !apperror.HasCode(err, "BE_002") {
		return nil, err
	}

	personnel, rosterErr := s.backend.ListDeliveryPersonnel(ctx)
	if rosterErr != nil {
		return nil, err
	}
	for _, p := range personnel {
		if p.ID == id {
			return &domain.User{
				ID:          p.ID,
				Name:        p.Name,
				Phone:       p.Phone,
				VehicleType: p.VehicleType,
				Status:      p.Status,
				Role:        "delivery",
			}, nil
		}
	}
	return nil, apperror.ErrNotFound("Courier")
}

// UpdateCourier saves the courier form.
func (s *EntityServiceImpl) UpdateCourier(ctx context.Context, id int64, update domain.CourierUpdate) error {
	if id <= 0 {
		return apperror.Validation("Invalid courier id")
	}
	update.Name = strings.TrimSpace(update.Name)
	update.Status = strings.TrimSpace(update.Status)
	if update.Name == "" {
		return apperror.Validation("Name is required")
	}
	if update.Status == "" {
		return apperror.Validation("Status is required")
	}
	return s.backend.UpdateCourier(ctx, id, update)
}

// GetCustomer reads the customer's user record.
func (s *EntityServiceImpl) GetCustomer(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, apperror.Validation("Invalid customer id")
	}
	return s.backend.GetUser(ctx, id)
}

// UpdateCustomer saves the customer form.
func (s *EntityServiceImpl) UpdateCustomer(ctx context.Context, id int64, update domain.CustomerUpdate) error {
	if id <= 0 {
		return apperror.Validation("Invalid customer id")
	}
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	update.Status = strings.TrimSpace(update.Status)
	if update.Name == "" {
		return apperror.Validation("Name is required")
	}
	if update.Status == "" {
		return apperror.Validation("Status is required")
	}
	if update.Email != "" {
		if err := fieldValidator.Var(update.Email, "email"); err != nil {
			return apperror.Validation("Email address is invalid")
		}
	}
	return s.backend.UpdateCustomer(ctx, id, update)
}

// GetOrder reads an order and renders its amounts in currency.
func (s *EntityServiceImpl) GetOrder(ctx context.Context, id int64, currency domain.DisplayCurrency) (*ports.OrderDetail, error) {
	if id <= 0 {
		return nil, apperror.Validation("Invalid order id")
	}
	order, err := s.backend.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	prices := make([]string, len(order.Items))
	for i, item := range order.Items {
		prices[i] = domain.FormatAmount(item.Price, currency)
	}
	return &ports.OrderDetail{
		Order:          order,
		Currency:       currency,
		TotalFormatted: domain.FormatAmount(order.Total, currency),
		ItemPrices:     prices,
	}, nil
}

// ListOrders returns one page of orders, optionally only those a courier
// can still be assigned to. Filtering happens on the fetched page.
func (s *EntityServiceImpl) ListOrders(ctx context.Context, req domain.PageRequest, assignableOnly bool) (*domain.Page[domain.Order], error) {
	page, err := s.backend.ListOrders(ctx, domain.NewPageRequest(req.Page, req.PerPage, domain.DefaultWalletsPerPage))
	if err != nil {
		return nil, err
	}
	if !assignableOnly {
		return page, nil
	}

	kept := make([]domain.Order, 0, len(page.Items))
	for i := range page.Items {
		if page.Items[i].Assignable() {
			kept = append(kept, page.Items[i])
		}
	}
	page.Items = kept
	return page, nil
}

// UpdateOrderStatus sets the order status.
func (s *EntityServiceImpl) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	if id <= 0 {
		return apperror.Validation("Invalid order id")
	}
	status = strings.TrimSpace(status)
	if status == "" {
		return apperror.Validation("Status is required")
	}
	return s.backend.UpdateOrderStatus(ctx, id, status)
}

// GetDeliveryEdit fetches the order and the courier roster concurrently.
func (s *EntityServiceImpl) GetDeliveryEdit(ctx context.Context, orderID int64) (*ports.DeliveryEdit, error) {
	if orderID <= 0 {
		return nil, apperror.Validation("Invalid order id")
	}

	var edit ports.DeliveryEdit
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		order, err := s.backend.GetOrder(gctx, orderID)
		edit.Order = order
		return err
	})
	g.Go(func() error {
		personnel, err := s.backend.ListDeliveryPersonnel(gctx)
		edit.Personnel = personnel
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &edit, nil
}

// SaveDelivery updates the status, then assigns a courier when one is chosen.
func (s *EntityServiceImpl) SaveDelivery(ctx context.Context, orderID int64, req ports.DeliverySave) error {
	if orderID <= 0 {
		return apperror.Validation("Invalid order id")
	}
	if req.DeliveryPersonID != nil && *req.DeliveryPersonID <= 0 {
		return apperror.Validation("Invalid delivery person id")
	}
	if err := s.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
		return err
	}
	if req.DeliveryPersonID == nil {
		return nil
	}

	err := s.backend.AssignDelivery(ctx, orderID, domain.DeliveryAssignment{
		DeliveryPersonID: *req.DeliveryPersonID,
		Address:          strings.TrimSpace(req.Address),
		Notes:            strings.TrimSpace(req.Notes),
	})
	if err != nil {
		s.log.Warn().Err(err).Int64("order_id", orderID).Msg("status saved but courier assignment failed")
		return err
	}
	return nil
}

// GetStockExit reads a stock exit.
func (s *EntityServiceImpl) GetStockExit(ctx context.Context, id int64) (*domain.StockExit, error) {
	if id <= 0 {
		return nil, apperror.Validation("Invalid stock exit id")
	}
	return s.backend.GetStockExit(ctx, id)
}

// OperationalStats returns the dashboard counters as-is.
func (s *EntityServiceImpl) OperationalStats(ctx context.Context) (domain.OperationalStats, error) {
	return s.backend.OperationalStats(ctx)
}
