package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func setupRateCache(t *testing.T, ttl time.Duration) (*RateCache, *mocks.MockExchangeRateBackend, *fakeClock) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockExchangeRateBackend(ctrl)
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	cache := NewRateCache(backend, ttl)
	cache.now = clock.now
	return cache, backend, clock
}

func TestRateCache_ReusesFreshList(t *testing.T) {
	cache, backend, clock := setupRateCache(t, 30*time.Second)
	ctx := context.Background()

	backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil).Times(1)

	first, err := cache.ListRates(ctx)
	require.NoError(t, err)
	clock.advance(29 * time.Second)
	second, err := cache.ListRates(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRateCache_RefetchesAfterTTL(t *testing.T) {
	cache, backend, clock := setupRateCache(t, 30*time.Second)
	ctx := context.Background()

	backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil).Times(2)

	_, err := cache.ListRates(ctx)
	require.NoError(t, err)
	clock.advance(30 * time.Second)
	_, err = cache.ListRates(ctx)
	require.NoError(t, err)
}

func TestRateCache_ErrorsAreNotCached(t *testing.T) {
	cache, backend, _ := setupRateCache(t, 30*time.Second)
	ctx := context.Background()

	gomock.InOrder(
		backend.EXPECT().ListRates(gomock.Any()).Return(nil, errors.New("upstream down")),
		backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil),
	)

	_, err := cache.ListRates(ctx)
	require.Error(t, err)
	rates, err := cache.ListRates(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, len(sampleRates()))
}

func TestRateCache_CreateInvalidates(t *testing.T) {
	cache, backend, _ := setupRateCache(t, time.Minute)
	ctx := context.Background()
	updated := append(sampleRates(), domain.ExchangeRate{
		ID: 5, FromCurrency: "NGN", ToCurrency: "USD", Rate: decimal.RequireFromString("0.0008"), IsActive: true,
	})

	gomock.InOrder(
		backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil),
		backend.EXPECT().CreateRate(gomock.Any(), "NGN", gomock.Any()).Return(nil),
		backend.EXPECT().ListRates(gomock.Any()).Return(updated, nil),
	)

	_, err := cache.ListRates(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.CreateRate(ctx, "NGN", decimal.RequireFromString("0.0008")))

	rates, err := cache.ListRates(ctx)
	require.NoError(t, err)
	assert.Len(t, rates, len(updated))
}

func TestRateCache_ZeroTTLDisablesCaching(t *testing.T) {
	cache, backend, _ := setupRateCache(t, 0)
	ctx := context.Background()

	backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil).Times(2)

	_, err := cache.ListRates(ctx)
	require.NoError(t, err)
	_, err = cache.ListRates(ctx)
	require.NoError(t, err)
}

func TestCurrencyService_ResolveUsesCachedRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockExchangeRateBackend(ctrl)
	sessions := mocks.NewMockSessionStore(ctrl)
	svc := NewCurrencyService(testCatalog, NewRateCache(backend, time.Minute), sessions, newTestLogger())
	ctx := context.Background()

	backend.EXPECT().ListRates(gomock.Any()).Return(sampleRates(), nil).Times(1)

	for i := 0; i < 3; i++ {
		c := svc.Resolve(ctx, "XAF")
		assert.Equal(t, "XAF", c.Code)
		assert.True(t, c.Value.Equal(decimal.NewFromInt(625)), "got %s", c.Value)
	}
}
