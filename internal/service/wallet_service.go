package service

import (
	"context"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService.
// Every mutation is validated locally first; balances always come from the backend.
type WalletServiceImpl struct {
	backend ports.WalletBackend
	log     zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(backend ports.WalletBackend, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{backend: backend, log: log}
}

// ListWallets returns one page of wallets.
func (s *WalletServiceImpl) ListWallets(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Wallet], error) {
	return s.backend.ListWallets(ctx, domain.NewPageRequest(req.Page, req.PerPage, domain.DefaultWalletsPerPage))
}

// ListTransactions returns one page of wallet movements.
func (s *WalletServiceImpl) ListTransactions(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.WalletTransaction], error) {
	return s.backend.ListTransactions(ctx, domain.NewPageRequest(req.Page, req.PerPage, domain.DefaultTransactionsPerPage))
}

// AdminBalance returns the signed-in admin's own wallet.
func (s *WalletServiceImpl) AdminBalance(ctx context.Context, session *domain.Session) (*domain.Wallet, error) {
	if session == nil || !session.HasUser() {
		return nil, apperror.ErrSessionUserMissing()
	}
	return s.backend.Balance(ctx)
}

// ListActiveSellers feeds the recharge target picker.
func (s *WalletServiceImpl) ListActiveSellers(ctx context.Context) ([]domain.EligibleSeller, error) {
	return s.backend.ListActiveSellers(ctx)
}

// Recharge credits exactly one target wallet.
func (s *WalletServiceImpl) Recharge(ctx context.Context, req ports.RechargeRequest) (*domain.Wallet, error) {
	if !req.Target.Valid() {
		return nil, apperror.ErrMissingTarget()
	}
	if !validAmount(req.Amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := s.backend.Recharge(ctx, req.Target, req.Amount)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("wallet_id", wallet.ID).
		Str("amount", req.Amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("wallet recharged")
	return wallet, nil
}

// RechargeOwn credits the signed-in admin's wallet.
func (s *WalletServiceImpl) RechargeOwn(ctx context.Context, session *domain.Session, amount decimal.Decimal) (*domain.Wallet, error) {
	if session == nil || !session.HasUser() {
		return nil, apperror.ErrSessionUserMissing()
	}
	userID := session.UserID
	return s.Recharge(ctx, ports.RechargeRequest{
		Target: domain.RechargeTarget{UserID: &userID},
		Amount: amount,
	})
}

// GenerateTreasury mints funds into the admin's treasury wallet.
func (s *WalletServiceImpl) GenerateTreasury(ctx context.Context, session *domain.Session, amount decimal.Decimal) (*domain.Wallet, error) {
	if !validAmount(amount) {
		return nil, apperror.ErrInvalidAmount()
	}
	if session == nil || !session.HasUser() {
		return nil, apperror.ErrSessionUserMissing()
	}

	wallet, err := s.backend.GenerateTreasury(ctx, session.UserID, amount)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("admin_user_id", session.UserID).
		Str("amount", amount.String()).
		Str("balance", wallet.Balance.String()).
		Msg("treasury generated")
	return wallet, nil
}

func validAmount(d decimal.Decimal) bool {
	return d.Sign() > 0
}
