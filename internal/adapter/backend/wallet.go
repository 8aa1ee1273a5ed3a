package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"wallet-admin-console/internal/core/domain"

	"github.com/shopspring/decimal"
)

type walletsResponse struct {
	Wallets paginated[domain.Wallet] `json:"wallets"`
}

type transactionsResponse struct {
	Transactions paginated[domain.WalletTransaction] `json:"transactions"`
}

type walletResponse struct {
	Wallet domain.Wallet `json:"wallet"`
}

type sellersResponse struct {
	Sellers []domain.EligibleSeller `json:"sellers"`
}

type rechargeRequest struct {
	WalletID *int64      `json:"wallet_id,omitempty"`
	UserID   *int64      `json:"user_id,omitempty"`
	Amount   json.Number `json:"amount"`
}

type treasuryRequest struct {
	Amount      json.Number `json:"amount"`
	AdminUserID int64       `json:"admin_user_id"`
}

func pageQuery(req domain.PageRequest) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(req.Page))
	q.Set("per_page", strconv.Itoa(req.PerPage))
	return q
}

// amountNumber sends amounts as JSON numbers without float rounding.
func amountNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// ListWallets handles GET wallet/all.
func (c *Client) ListWallets(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Wallet], error) {
	var resp walletsResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/all", query: pageQuery(req)}, &resp); err != nil {
		return nil, err
	}
	return resp.Wallets.toPage(req), nil
}

// ListTransactions handles GET wallet/transactions/all.
func (c *Client) ListTransactions(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.WalletTransaction], error) {
	var resp transactionsResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/transactions/all", query: pageQuery(req)}, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions.toPage(req), nil
}

// Balance handles GET wallet/balance for the token's owner.
func (c *Client) Balance(ctx context.Context) (*domain.Wallet, error) {
	var resp walletResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/balance", entity: "Wallet"}, &resp); err != nil {
		return nil, err
	}
	return &resp.Wallet, nil
}

// Recharge handles POST wallet/recharge. The returned wallet carries the
// balance computed by the backend.
func (c *Client) Recharge(ctx context.Context, target domain.RechargeTarget, amount decimal.Decimal) (*domain.Wallet, error) {
	var resp walletResponse
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "wallet/recharge",
		body: rechargeRequest{
			WalletID: target.WalletID,
			UserID:   target.UserID,
			Amount:   amountNumber(amount),
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Wallet, nil
}

// GenerateTreasury handles POST wallet/treasury/generate.
func (c *Client) GenerateTreasury(ctx context.Context, adminUserID int64, amount decimal.Decimal) (*domain.Wallet, error) {
	var resp walletResponse
	err := c.send(ctx, request{
		method: http.MethodPost,
		path:   "wallet/treasury/generate",
		body:   treasuryRequest{Amount: amountNumber(amount), AdminUserID: adminUserID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp.Wallet, nil
}

// ListActiveSellers handles GET wallet/sellers.
func (c *Client) ListActiveSellers(ctx context.Context) ([]domain.EligibleSeller, error) {
	var resp sellersResponse
	if err := c.send(ctx, request{method: http.MethodGet, path: "wallet/sellers"}, &resp); err != nil {
		return nil, err
	}
	if resp.Sellers == nil {
		return []domain.EligibleSeller{}, nil
	}
	return resp.Sellers, nil
}
