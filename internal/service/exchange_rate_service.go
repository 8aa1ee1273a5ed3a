package service

import (
	"context"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// ExchangeRateServiceImpl implements ports.ExchangeRateService.
type ExchangeRateServiceImpl struct {
	backend ports.ExchangeRateBackend
	log     zerolog.Logger
}

// NewExchangeRateService creates a new ExchangeRateServiceImpl.
func NewExchangeRateService(backend ports.ExchangeRateBackend, log zerolog.Logger) *ExchangeRateServiceImpl {
	return &ExchangeRateServiceImpl{backend: backend, log: log}
}

// List returns the configured rates.
func (s *ExchangeRateServiceImpl) List(ctx context.Context) ([]domain.ExchangeRate, error) {
	return s.backend.ListRates(ctx)
}

// Create configures fromCurrency -> USD and returns the refreshed list.
func (s *ExchangeRateServiceImpl) Create(ctx context.Context, fromCurrency string, rate decimal.Decimal) ([]domain.ExchangeRate, error) {
	code := domain.NormalizeCurrencyCode(fromCurrency)
	if !domain.IsCurrencyCode(code) {
		return nil, apperror.ErrInvalidCurrencyCode()
	}
	if code == domain.BaseCurrency {
		return nil, apperror.Validation("Rates are quoted against USD; choose another currency")
	}
	if rate.Sign() <= 0 {
		return nil, apperror.ErrInvalidRate()
	}

	if err := s.backend.CreateRate(ctx, code, rate); err != nil {
		return nil, err
	}
	s.log.Info().Str("from_currency", code).Str("rate", rate.String()).Msg("exchange rate configured")

	return s.backend.ListRates(ctx)
}
