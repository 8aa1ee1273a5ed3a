package service

import (
	"context"
	"strings"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// PinServiceImpl implements ports.PinService. Refund eligibility is decided
// upstream; the console only filters what it offers.
type PinServiceImpl struct {
	backend ports.PinBackend
	log     zerolog.Logger
}

// NewPinService creates a new PinServiceImpl.
func NewPinService(backend ports.PinBackend, log zerolog.Logger) *PinServiceImpl {
	return &PinServiceImpl{backend: backend, log: log}
}

// List returns one page of PINs matching filter.
func (s *PinServiceImpl) List(ctx context.Context, filter ports.PinFilter) (*domain.Page[domain.Pin], error) {
	if filter.Status != "" {
		status, ok := domain.ParsePinStatus(string(filter.Status))
		if !ok {
			return nil, apperror.Validation("Unknown PIN status")
		}
		filter.Status = status
	}
	if filter.SellerID != nil && *filter.SellerID <= 0 {
		return nil, apperror.Validation("Invalid seller id")
	}
	filter.Page = domain.NewPageRequest(filter.Page.Page, filter.Page.PerPage, domain.DefaultPinsPerPage)
	return s.backend.ListPins(ctx, filter)
}

// Refund asks the backend to refund the unused part of a PIN.
func (s *PinServiceImpl) Refund(ctx context.Context, pinID int64, reason string) error {
	if pinID <= 0 {
		return apperror.Validation("Invalid PIN id")
	}
	if err := s.backend.RefundPin(ctx, pinID, strings.TrimSpace(reason)); err != nil {
		return err
	}
	s.log.Info().Int64("pin_id", pinID).Msg("PIN refunded")
	return nil
}
