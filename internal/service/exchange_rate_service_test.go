package service

import (
	"context"
	"testing"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports/mocks"
	"wallet-admin-console/pkg/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupExchangeRateService(t *testing.T) (*ExchangeRateServiceImpl, *mocks.MockExchangeRateBackend) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockExchangeRateBackend(ctrl)
	return NewExchangeRateService(backend, newTestLogger()), backend
}

func TestExchangeRateService_Create_RefreshesList(t *testing.T) {
	svc, backend := setupExchangeRateService(t)
	ctx := context.Background()
	rate := decimal.RequireFromString("0.0016")

	gomock.InOrder(
		backend.EXPECT().CreateRate(ctx, "XAF", rate).Return(nil),
		backend.EXPECT().ListRates(ctx).Return([]domain.ExchangeRate{
			{ID: 1, FromCurrency: "XAF", ToCurrency: "USD", Rate: rate, IsActive: true},
		}, nil),
	)

	rates, err := svc.Create(ctx, " xaf ", rate)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, "XAF", rates[0].FromCurrency)
	assert.Equal(t, "USD", rates[0].ToCurrency)
	assert.True(t, rates[0].Rate.Equal(rate))
}

func TestExchangeRateService_Create_TruncatesCode(t *testing.T) {
	svc, backend := setupExchangeRateService(t)
	ctx := context.Background()

	backend.EXPECT().CreateRate(ctx, "NGN", gomock.Any()).Return(nil)
	backend.EXPECT().ListRates(ctx).Return([]domain.ExchangeRate{}, nil)

	_, err := svc.Create(ctx, "ngnx", decimal.RequireFromString("0.00065"))
	require.NoError(t, err)
}

func TestExchangeRateService_Create_LocalValidation(t *testing.T) {
	tests := []struct {
		name string
		code string
		rate decimal.Decimal
	}{
		{"code too short", "XA", decimal.NewFromInt(1)},
		{"empty code", "  ", decimal.NewFromInt(1)},
		{"non letters", "X1F", decimal.NewFromInt(1)},
		{"base currency", "usd", decimal.NewFromInt(1)},
		{"zero rate", "XAF", decimal.Zero},
		{"negative rate", "XAF", decimal.NewFromFloat(-0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := setupExchangeRateService(t)

			_, err := svc.Create(context.Background(), tt.code, tt.rate)
			assert.True(t, apperror.HasCode(err, "VAL_001"), "got %v", err)
		})
	}
}

func TestExchangeRateService_List(t *testing.T) {
	svc, backend := setupExchangeRateService(t)
	ctx := context.Background()

	backend.EXPECT().ListRates(ctx).Return(nil, apperror.ErrNetwork(assert.AnError))

	_, err := svc.List(ctx)
	assert.True(t, apperror.HasCode(err, "NET_001"))
}
