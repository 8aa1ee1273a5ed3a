package service

import (
	"context"
	"testing"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/core/ports/mocks"
	"wallet-admin-console/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupWalletService(t *testing.T) (*WalletServiceImpl, *mocks.MockWalletBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockWalletBackend(ctrl)
	return NewWalletService(backend, newTestLogger()), backend
}

func adminSession() *domain.Session {
	return &domain.Session{UserID: 1, Role: domain.RoleSuperAdmin}
}

func TestWalletService_ListWallets_NormalizesPage(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()

	backend.EXPECT().ListWallets(ctx, domain.PageRequest{Page: 1, PerPage: 20}).
		Return(&domain.Page[domain.Wallet]{Page: 1, PerPage: 20}, nil)

	_, err := svc.ListWallets(ctx, domain.PageRequest{Page: -3, PerPage: 0})
	require.NoError(t, err)
}

func TestWalletService_ListTransactions_CapsPerPage(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()

	backend.EXPECT().ListTransactions(ctx, domain.PageRequest{Page: 2, PerPage: domain.MaxPerPage}).
		Return(&domain.Page[domain.WalletTransaction]{}, nil)

	_, err := svc.ListTransactions(ctx, domain.PageRequest{Page: 2, PerPage: 1000})
	require.NoError(t, err)
}

func TestWalletService_Recharge_BalanceFromServer(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()
	walletID := int64(5)
	amount := decimal.RequireFromString("30.50")

	// wallet held $120.00; the server reports the new balance
	backend.EXPECT().Recharge(ctx, domain.RechargeTarget{WalletID: &walletID}, amount).
		Return(&domain.Wallet{ID: 5, Balance: decimal.RequireFromString("150.50"), Currency: "USD"}, nil)

	wallet, err := svc.Recharge(ctx, ports.RechargeRequest{
		Target: domain.RechargeTarget{WalletID: &walletID},
		Amount: amount,
	})
	require.NoError(t, err)
	assert.Equal(t, "$150.50", domain.FormatAmount(wallet.Balance, domain.USD))
}

func TestWalletService_Recharge_LocalValidation(t *testing.T) {
	walletID, userID := int64(5), int64(3)

	tests := []struct {
		name   string
		req    ports.RechargeRequest
		errMsg string
	}{
		{"zero amount", ports.RechargeRequest{Target: domain.RechargeTarget{WalletID: &walletID}, Amount: decimal.Zero}, "greater than zero"},
		{"negative amount", ports.RechargeRequest{Target: domain.RechargeTarget{WalletID: &walletID}, Amount: decimal.NewFromInt(-10)}, "greater than zero"},
		{"no target", ports.RechargeRequest{Amount: decimal.NewFromInt(10)}, "Select a wallet"},
		{"both targets", ports.RechargeRequest{Target: domain.RechargeTarget{WalletID: &walletID, UserID: &userID}, Amount: decimal.NewFromInt(10)}, "Select a wallet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no EXPECT: any backend call fails the test
			svc, _ := setupWalletService(t)

			_, err := svc.Recharge(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, "VAL_001"))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWalletService_Recharge_UpstreamMessageVerbatim(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()
	userID := int64(3)

	backend.EXPECT().Recharge(ctx, gomock.Any(), gomock.Any()).
		Return(nil, apperror.Backend(422, "Treasury balance is insufficient"))

	_, err := svc.Recharge(ctx, ports.RechargeRequest{
		Target: domain.RechargeTarget{UserID: &userID},
		Amount: decimal.NewFromInt(10),
	})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Treasury balance is insufficient", appErr.Message)
}

func TestWalletService_RechargeOwn(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()
	userID := int64(1)

	backend.EXPECT().Recharge(ctx, domain.RechargeTarget{UserID: &userID}, decimal.NewFromInt(50)).
		Return(&domain.Wallet{ID: 1, Balance: decimal.NewFromInt(50)}, nil)

	wallet, err := svc.RechargeOwn(ctx, adminSession(), decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(50)))
}

func TestWalletService_RechargeOwn_NoUser(t *testing.T) {
	svc, _ := setupWalletService(t)

	_, err := svc.RechargeOwn(context.Background(), &domain.Session{}, decimal.NewFromInt(50))
	assert.True(t, apperror.HasCode(err, "VAL_001"))

	_, err = svc.RechargeOwn(context.Background(), nil, decimal.NewFromInt(50))
	assert.True(t, apperror.HasCode(err, "VAL_001"))
}

func TestWalletService_GenerateTreasury(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()

	backend.EXPECT().GenerateTreasury(ctx, int64(1), decimal.NewFromInt(1000)).
		Return(&domain.Wallet{ID: 1, Balance: decimal.NewFromInt(6000)}, nil)

	wallet, err := svc.GenerateTreasury(ctx, adminSession(), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.Equal(t, "6000", wallet.Balance.String())

	_, err = svc.GenerateTreasury(ctx, adminSession(), decimal.Zero)
	assert.True(t, apperror.HasCode(err, "VAL_001"))
}

func TestWalletService_AdminBalance(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()

	backend.EXPECT().Balance(ctx).Return(&domain.Wallet{ID: 1, Balance: decimal.NewFromInt(10)}, nil)

	wallet, err := svc.AdminBalance(ctx, adminSession())
	require.NoError(t, err)
	assert.Equal(t, int64(1), wallet.ID)

	_, err = svc.AdminBalance(ctx, &domain.Session{})
	assert.True(t, apperror.HasCode(err, "VAL_001"))
}

func TestWalletService_ListActiveSellers(t *testing.T) {
	svc, backend := setupWalletService(t)
	ctx := context.Background()

	backend.EXPECT().ListActiveSellers(ctx).Return([]domain.EligibleSeller{{UserRef: domain.UserRef{ID: 8}}}, nil)

	sellers, err := svc.ListActiveSellers(ctx)
	require.NoError(t, err)
	assert.Len(t, sellers, 1)
}
