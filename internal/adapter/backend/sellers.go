package backend

import (
	"context"
	"net/http"

	"wallet-admin-console/internal/core/domain"
)

type eligibleSellersResponse struct {
	Users paginated[domain.EligibleSeller] `json:"users"`
}

// ListEligibleSellers handles GET wallet/sellers/eligible.
func (c *Client) ListEligibleSellers(ctx context.Context, req domain.PageRequest, search string) (*domain.Page[domain.EligibleSeller], error) {
	q := pageQuery(req)
	if search != "" {
		q.Set("search", search)
	}
	var resp eligibleSellersResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/sellers/eligible", query: q}, &resp); err != nil {
		return nil, err
	}
	return resp.Users.toPage(req), nil
}

// UpdateSeller handles POST wallet/sellers/update.
func (c *Client) UpdateSeller(ctx context.Context, update domain.SellerUpdate) error {
	return c.send(ctx, request{
		method: http.MethodPost,
		path:   "wallet/sellers/update",
		body:   update,
		entity: "User",
	}, nil)
}
