package backend

import (
	"context"
	"net/http"
	"strconv"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
)

type pinsResponse struct {
	Pins paginated[domain.Pin] `json:"pins"`
}

type refundRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ListPins handles GET wallet/pins/all.
func (c *Client) ListPins(ctx context.Context, filter ports.PinFilter) (*domain.Page[domain.Pin], error) {
	q := pageQuery(filter.Page)
	if filter.SellerID != nil {
		q.Set("seller_id", strconv.FormatInt(*filter.SellerID, 10))
	}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	var resp pinsResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/pins/all", query: q}, &resp); err != nil {
		return nil, err
	}
	return resp.Pins.toPage(filter.Page), nil
}

// RefundPin handles POST wallet/pins/{id}/refund. An empty reason is omitted.
func (c *Client) RefundPin(ctx context.Context, pinID int64, reason string) error {
	return c.send(ctx, request{
		method: http.MethodPost,
		path:   "wallet/pins/" + strconv.FormatInt(pinID, 10) + "/refund",
		body:   refundRequest{Reason: reason},
		entity: "PIN",
	}, nil)
}
