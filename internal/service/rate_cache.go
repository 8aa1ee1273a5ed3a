package service

import (
	"context"
	"sync"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// RateCache reuses the upstream rate list for a short while so that
// rendering amounts in a local currency does not cost an extra upstream
// call per response. Creating a rate drops the cached list.
type RateCache struct {
	backend ports.ExchangeRateBackend
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group

	mu        sync.Mutex
	rates     []domain.ExchangeRate
	fetchedAt time.Time
	gen       uint64
}

// NewRateCache wraps backend. A ttl <= 0 disables caching.
func NewRateCache(backend ports.ExchangeRateBackend, ttl time.Duration) *RateCache {
	return &RateCache{backend: backend, ttl: ttl, now: time.Now}
}

// ListRates returns the cached list while it is fresh. Concurrent misses
// share one upstream call; failures are not cached.
func (c *RateCache) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	if c.ttl <= 0 {
		return c.backend.ListRates(ctx)
	}

	c.mu.Lock()
	if c.rates != nil && c.now().Sub(c.fetchedAt) < c.ttl {
		rates := c.rates
		c.mu.Unlock()
		return rates, nil
	}
	gen := c.gen
	c.mu.Unlock()

	v, err, _ := c.group.Do("rates", func() (interface{}, error) {
		rates, err := c.backend.ListRates(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		// a CreateRate during the fetch makes this list stale
		if c.gen == gen {
			c.rates = rates
			c.fetchedAt = c.now()
		}
		c.mu.Unlock()
		return rates, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.ExchangeRate), nil
}

// CreateRate forwards to the backend and drops the cached list.
func (c *RateCache) CreateRate(ctx context.Context, fromCurrency string, rate decimal.Decimal) error {
	err := c.backend.CreateRate(ctx, fromCurrency, rate)
	c.Invalidate()
	return err
}

// Invalidate drops the cached list.
func (c *RateCache) Invalidate() {
	c.mu.Lock()
	c.rates = nil
	c.gen++
	c.mu.Unlock()
	c.group.Forget("rates")
}
