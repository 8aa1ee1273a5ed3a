package backend

import (
	"context"
	"encoding/json"
	"net/http"

	"wallet-admin-console/internal/core/domain"

	"github.com/shopspring/decimal"
)

type ratesResponse struct {
	Rates []domain.ExchangeRate `json:"rates"`
}

type createRateRequest struct {
	FromCurrency string      `json:"from_currency"`
	Rate         json.Number `json:"rate"`
}

// ListRates handles GET exchange-rates.
func (c *Client) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	var resp ratesResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "exchange-rates"}, &resp); err != nil {
		return nil, err
	}
	if resp.Rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return resp.Rates, nil
}

// CreateRate handles POST exchange-rates. The quote currency is implied USD.
func (c *Client) CreateRate(ctx context.Context, fromCurrency string, rate decimal.Decimal) error {
	return c.send(ctx, request{
		method: http.MethodPost,
		path:   "exchange-rates",
		body:   createRateRequest{FromCurrency: fromCurrency, Rate: amountNumber(rate)},
	}, nil)
}
