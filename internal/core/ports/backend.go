package ports

import (
	"context"

	"wallet-admin-console/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Upstream REST backend ports. Every call except sign-in and refresh
// authenticates with the access token carried by ctx.

// SignInResult is the outcome of a successful upstream sign-in.
type SignInResult struct {
	UserID       int64
	Username     string
	Email        string
	Role         string
	Country      string
	AccessToken  string
	RefreshToken string
}

// TokenPair is a refreshed upstream token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string // empty when the backend did not rotate it
}

// AuthBackend authenticates console admins against the upstream.
type AuthBackend interface {
	SignIn(ctx context.Context, username, password string) (*SignInResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// WalletBackend covers wallet listing, balances and recharges.
type WalletBackend interface {
	ListWallets(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Wallet], error)
	ListTransactions(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.WalletTransaction], error)
	Balance(ctx context.Context) (*domain.Wallet, error)
	Recharge(ctx context.Context, target domain.RechargeTarget, amount decimal.Decimal) (*domain.Wallet, error)
	GenerateTreasury(ctx context.Context, adminUserID int64, amount decimal.Decimal) (*domain.Wallet, error)
	ListActiveSellers(ctx context.Context) ([]domain.EligibleSeller, error)
}

// ExchangeRateBackend manages local-currency to USD rates.
type ExchangeRateBackend interface {
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
	CreateRate(ctx context.Context, fromCurrency string, rate decimal.Decimal) error
}

// SellerBackend manages wallet seller eligibility.
type SellerBackend interface {
	ListEligibleSellers(ctx context.Context, req domain.PageRequest, search string) (*domain.Page[domain.EligibleSeller], error)
	UpdateSeller(ctx context.Context, update domain.SellerUpdate) error
}

// PinFilter narrows the PIN listing.
type PinFilter struct {
	Page     domain.PageRequest
	SellerID *int64
	Status   domain.PinStatus // empty = all
}

// PinBackend lists and refunds prepaid PINs.
type PinBackend interface {
	ListPins(ctx context.Context, filter PinFilter) (*domain.Page[domain.Pin], error)
	RefundPin(ctx context.Context, pinID int64, reason string) error
}

// EntityBackend is the pass-through surface of the entity pages.
type EntityBackend interface {
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	UpdateCourier(ctx context.Context, id int64, update domain.CourierUpdate) error
	UpdateCustomer(ctx context.Context, id int64, update domain.CustomerUpdate) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	ListDeliveryPersonnel(ctx context.Context) ([]domain.DeliveryPerson, error)
	AssignDelivery(ctx context.Context, orderID int64, assignment domain.DeliveryAssignment) error
	GetStockExit(ctx context.Context, id int64) (*domain.StockExit, error)
	OperationalStats(ctx context.Context) (domain.OperationalStats, error)
}
