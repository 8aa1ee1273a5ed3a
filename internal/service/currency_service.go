package service

import (
	"context"
	"fmt"
	"sort"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CurrencyServiceImpl implements ports.CurrencyService. The catalog
// (code -> symbol) is fixed at startup; values come from active rates.
type CurrencyServiceImpl struct {
	catalog  map[string]string
	rates    ports.ExchangeRateBackend
	sessions ports.SessionStore
	log      zerolog.Logger
}

// NewCurrencyService creates a new CurrencyServiceImpl. The catalog is copied.
func NewCurrencyService(catalog map[string]string, rates ports.ExchangeRateBackend, sessions ports.SessionStore, log zerolog.Logger) *CurrencyServiceImpl {
	c := make(map[string]string, len(catalog)+1)
	for code, symbol := range catalog {
		c[domain.NormalizeCurrencyCode(code)] = symbol
	}
	if _, ok := c[domain.BaseCurrency]; !ok {
		c[domain.BaseCurrency] = domain.USD.Symbol
	}
	return &CurrencyServiceImpl{catalog: c, rates: rates, sessions: sessions, log: log}
}

func (s *CurrencyServiceImpl) usd() domain.DisplayCurrency {
	usd := domain.USD
	usd.Symbol = s.catalog[domain.BaseCurrency]
	return usd
}

// Available lists USD followed by every catalog currency with an active rate.
// When several active rates exist for a code the most recent one wins.
func (s *CurrencyServiceImpl) Available(ctx context.Context) ([]domain.DisplayCurrency, error) {
	rates, err := s.rates.ListRates(ctx)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]domain.ExchangeRate)
	for _, r := range rates {
		code := domain.NormalizeCurrencyCode(r.FromCurrency)
		if !r.IsActive || r.Rate.Sign() <= 0 || code == domain.BaseCurrency {
			continue
		}
		if _, ok := s.catalog[code]; !ok {
			continue
		}
		if prev, ok := latest[code]; !ok || r.UpdatedAt.After(prev.UpdatedAt) {
			latest[code] = r
		}
	}

	out := make([]domain.DisplayCurrency, 0, len(latest)+1)
	for code, r := range latest {
		out = append(out, domain.DisplayCurrency{Code: code, Symbol: s.catalog[code], Value: r.DisplayValue()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })

	return append([]domain.DisplayCurrency{s.usd()}, out...), nil
}

// Resolve never fails: anything unknown or unavailable renders as USD.
func (s *CurrencyServiceImpl) Resolve(ctx context.Context, code string) domain.DisplayCurrency {
	code = domain.NormalizeCurrencyCode(code)
	if code == "" || code == domain.BaseCurrency {
		return s.usd()
	}

	available, err := s.Available(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("currency", code).Msg("exchange rates unavailable, rendering in USD")
		return s.usd()
	}
	if c, ok := findCurrency(available, code); ok {
		return c
	}
	return s.usd()
}

// Select stores code as the session's display currency.
func (s *CurrencyServiceImpl) Select(ctx context.Context, sessionID uuid.UUID, code string) (domain.DisplayCurrency, error) {
	code = domain.NormalizeCurrencyCode(code)
	if !domain.IsCurrencyCode(code) {
		return domain.DisplayCurrency{}, apperror.ErrInvalidCurrencyCode()
	}

	available, err := s.Available(ctx)
	if err != nil {
		return domain.DisplayCurrency{}, err
	}
	selected, ok := findCurrency(available, code)
	if !ok {
		return domain.DisplayCurrency{}, apperror.Validation(fmt.Sprintf("Currency %s is not available", code))
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.DisplayCurrency{}, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return domain.DisplayCurrency{}, apperror.ErrSessionExpired()
	}
	session.DisplayCurrency = selected.Code
	if err := s.sessions.Save(ctx, session, 0); err != nil {
		return domain.DisplayCurrency{}, apperror.InternalError(fmt.Errorf("save session: %w", err))
	}
	return selected, nil
}

func findCurrency(list []domain.DisplayCurrency, code string) (domain.DisplayCurrency, bool) {
	for _, c := range list {
		if c.Code == code {
			return c, true
		}
	}
	return domain.DisplayCurrency{}, false
}
