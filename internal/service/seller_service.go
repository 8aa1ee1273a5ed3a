package service

import (
	"context"
	"strings"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
)

// SellerServiceImpl implements ports.SellerService.
type SellerServiceImpl struct {
	backend ports.SellerBackend
	users   ports.EntityBackend
	log     zerolog.Logger
}

// NewSellerService creates a new SellerServiceImpl.
func NewSellerService(backend ports.SellerBackend, users ports.EntityBackend, log zerolog.Logger) *SellerServiceImpl {
	return &SellerServiceImpl{backend: backend, users: users, log: log}
}

// ListEligible returns users that can be toggled as wallet sellers.
func (s *SellerServiceImpl) ListEligible(ctx context.Context, req domain.PageRequest, search string) (*domain.Page[domain.EligibleSeller], error) {
	req = domain.NewPageRequest(req.Page, req.PerPage, domain.DefaultSellersPerPage)
	return s.backend.ListEligibleSellers(ctx, req, strings.TrimSpace(search))
}

// Activate makes a user a wallet seller. A WhatsApp contact is mandatory.
func (s *SellerServiceImpl) Activate(ctx context.Context, userID int64, whatsapp string) (*domain.SellerChange, error) {
	if userID <= 0 {
		return nil, apperror.Validation("Invalid user id")
	}
	whatsapp = strings.TrimSpace(whatsapp)
	if whatsapp == "" {
		return nil, apperror.ErrWhatsAppRequired()
	}
	return s.apply(ctx, domain.SellerUpdate{UserID: userID, IsWalletSeller: true, WhatsApp: whatsapp}, "")
}

// Deactivate removes the wallet seller flag and clears the contact.
func (s *SellerServiceImpl) Deactivate(ctx context.Context, userID int64) (*domain.SellerChange, error) {
	if userID <= 0 {
		return nil, apperror.Validation("Invalid user id")
	}
	return s.apply(ctx, domain.SellerUpdate{UserID: userID}, domain.SellerDeactivationWarning)
}

// UpdateContact changes the WhatsApp contact and re-sends the current status.
func (s *SellerServiceImpl) UpdateContact(ctx context.Context, userID int64, whatsapp string) (*domain.SellerChange, error) {
	if userID <= 0 {
		return nil, apperror.Validation("Invalid user id")
	}
	whatsapp = strings.TrimSpace(whatsapp)

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsWalletSeller && whatsapp == "" {
		return nil, apperror.ErrWhatsAppRequired()
	}
	return s.apply(ctx, domain.SellerUpdate{UserID: userID, IsWalletSeller: user.IsWalletSeller, WhatsApp: whatsapp}, "")
}

func (s *SellerServiceImpl) apply(ctx context.Context, update domain.SellerUpdate, warning string) (*domain.SellerChange, error) {
	if err := s.backend.UpdateSeller(ctx, update); err != nil {
		return nil, err
	}
	s.log.Info().
		Int64("user_id", update.UserID).
		Bool("is_wallet_seller", update.IsWalletSeller).
		Msg("wallet seller updated")
	return &domain.SellerChange{
		UserID:         update.UserID,
		IsWalletSeller: update.IsWalletSeller,
		WhatsApp:       update.WhatsApp,
		Warning:        warning,
	}, nil
}
