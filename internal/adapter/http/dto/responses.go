package dto

import (
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"

	"github.com/shopspring/decimal"
)

// PageResponse wraps one page of a list view. Page is 1-indexed,
// PageIndex is the same page 0-indexed.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageIndex  int    `json:"page_index"`
	PerPage    int    `json:"per_page"`
	TotalPages int    `json:"total_pages"`
	State      string `json:"state"`
}

// NewPageResponse converts a page, mapping every item with conv.
func NewPageResponse[S, T any](p *domain.Page[S], state view.Presentation, conv func(*S) T) PageResponse[T] {
	items := make([]T, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, conv(&p.Items[i]))
	}
	return PageResponse[T]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageIndex:  p.PageIndex(),
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages(),
		State:      string(state),
	}
}

// ListResponse wraps an unpaginated list view.
type ListResponse[T any] struct {
	Items []T    `json:"items"`
	State string `json:"state"`
}

// NewListResponse wraps items, never encoding a nil slice as null.
func NewListResponse[T any](items []T, state view.Presentation) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, State: string(state)}
}

// SessionResponse is the signed-in administrator as the UI sees it.
type SessionResponse struct {
	UserID          int64  `json:"user_id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	Country         string `json:"country,omitempty"`
	DisplayCurrency string `json:"display_currency"`
}

// ToSessionResponse hides the session id and upstream tokens.
func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		UserID:          s.UserID,
		Name:            s.Name,
		Email:           s.Email,
		Role:            s.Role,
		Country:         s.Country,
		DisplayCurrency: s.DisplayCurrency,
	}
}

// LoginResponse is returned once per sign-in.
type LoginResponse struct {
	Token   string          `json:"token"`
	Expiry  int64           `json:"expiry"` // Unix timestamp
	Session SessionResponse `json:"session"`
}

// WalletResponse renders a wallet with its balance in the display currency.
type WalletResponse struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id,omitempty"`
	Owner            string          `json:"owner,omitempty"`
	OwnerEmail       string          `json:"owner_email,omitempty"`
	Balance          decimal.Decimal `json:"balance"`
	Currency         string          `json:"currency"`
	BalanceFormatted string          `json:"balance_formatted"`
}

// WalletConverter renders wallets in c.
func WalletConverter(c domain.DisplayCurrency) func(*domain.Wallet) WalletResponse {
	return func(w *domain.Wallet) WalletResponse {
		resp := WalletResponse{
			ID:               w.ID,
			UserID:           w.UserID,
			Balance:          w.Balance,
			Currency:         w.Currency,
			BalanceFormatted: domain.FormatAmount(w.Balance, c),
		}
		if w.User != nil {
			resp.Owner = w.User.DisplayName()
			resp.OwnerEmail = w.User.Email
			if resp.UserID == 0 {
				resp.UserID = w.User.ID
			}
		}
		return resp
	}
}

type TransactionResponse struct {
	ID              int64           `json:"id"`
	WalletID        int64           `json:"wallet_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	AmountFormatted string          `json:"amount_formatted"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Description     string          `json:"description,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

func TransactionConverter(c domain.DisplayCurrency) func(*domain.WalletTransaction) TransactionResponse {
	return func(tx *domain.WalletTransaction) TransactionResponse {
		return TransactionResponse{
			ID:              tx.ID,
			WalletID:        tx.WalletID,
			Type:            tx.Type,
			Amount:          tx.Amount,
			AmountFormatted: domain.FormatAmount(tx.Amount, c),
			BalanceAfter:    tx.BalanceAfter,
			Description:     tx.Description,
			CreatedAt:       formatTime(tx.CreatedAt),
		}
	}
}

// PinResponse exposes whether the console offers a refund for the PIN.
type PinResponse struct {
	ID         int64           `json:"id"`
	Code       string          `json:"code"`
	Seller     *domain.UserRef `json:"seller,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	AmountUsed decimal.Decimal `json:"amount_used"`
	Status     string          `json:"status"`
	CanRefund  bool            `json:"can_refund"`
	CreatedAt  string          `json:"created_at"`
}

func ToPinResponse(p *domain.Pin) PinResponse {
	return PinResponse{
		ID:         p.ID,
		Code:       p.Code,
		Seller:     p.Seller,
		Amount:     p.Amount,
		AmountUsed: p.AmountUsed,
		Status:     string(p.Status),
		CanRefund:  p.CanRefund(),
		CreatedAt:  formatTime(p.CreatedAt),
	}
}

// PinRefundResponse is the refund outcome plus the reloaded PIN list.
// Pins is nil when the reload failed.
type PinRefundResponse struct {
	PinID int64                      `json:"pin_id"`
	Pins  *PageResponse[PinResponse] `json:"pins,omitempty"`
}

type OrderResponse struct {
	*domain.Order
	Currency       string   `json:"display_currency"`
	TotalFormatted string   `json:"total_formatted"`
	ItemPrices     []string `json:"item_prices"`
}

func ToOrderResponse(d *ports.OrderDetail) OrderResponse {
	return OrderResponse{
		Order:          d.Order,
		Currency:       d.Currency.Code,
		TotalFormatted: d.TotalFormatted,
		ItemPrices:     d.ItemPrices,
	}
}

type StockExitResponse struct {
	ID          int64  `json:"id"`
	Reference   string `json:"reference"`
	Product     string `json:"product"`
	SKU         string `json:"sku"`
	Quantity    int64  `json:"quantity"`
	Destination string `json:"destination"`
	Reason      string `json:"reason,omitempty"`
	Notes       string `json:"notes,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

func ToStockExitResponse(e *domain.StockExit) StockExitResponse {
	return StockExitResponse{
		ID:          e.ID,
		Reference:   e.DisplayReference(),
		Product:     e.Product,
		SKU:         e.SKU,
		Quantity:    e.Quantity,
		Destination: e.Destination,
		Reason:      e.Reason,
		Notes:       e.Notes,
		Status:      e.Status(),
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// CurrenciesResponse lists the selectable display currencies.
type CurrenciesResponse struct {
	ListResponse[domain.DisplayCurrency]
	Selected string `json:"selected"`
}
