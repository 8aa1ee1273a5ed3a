package ports

import (
	"context"
	"time"

	"wallet-admin-console/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TokenSealer encrypts upstream tokens before they are stored.
type TokenSealer interface {
	Seal(plaintext string) (string, error)
	Open(sealed string) (string, error)
}

// TokenService handles console JWT operations.
type TokenService interface {
	Generate(sessionID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	SessionID uuid.UUID
}

// --- Service Ports (Business Logic) ---

// AuthService signs admins in and keeps their upstream token fresh.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	// Resolve loads the session and returns a usable upstream access token,
	// refreshing it when it has expired.
	Resolve(ctx context.Context, sessionID uuid.UUID) (*ResolvedSession, error)
}

// LoginResult is returned once per successful sign-in.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Session   *domain.Session
}

// ResolvedSession pairs a session with its plaintext upstream access token.
type ResolvedSession struct {
	Session     *domain.Session
	AccessToken string
}

// WalletService defines wallet listing and recharge logic.
type WalletService interface {
	ListWallets(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.Wallet], error)
	ListTransactions(ctx context.Context, req domain.PageRequest) (*domain.Page[domain.WalletTransaction], error)
	AdminBalance(ctx context.Context, session *domain.Session) (*domain.Wallet, error)
	ListActiveSellers(ctx context.Context) ([]domain.EligibleSeller, error)
	Recharge(ctx context.Context, req RechargeRequest) (*domain.Wallet, error)
	RechargeOwn(ctx context.Context, session *domain.Session, amount decimal.Decimal) (*domain.Wallet, error)
	GenerateTreasury(ctx context.Context, session *domain.Session, amount decimal.Decimal) (*domain.Wallet, error)
}

// RechargeRequest holds input for crediting a wallet.
type RechargeRequest struct {
	Target domain.RechargeTarget
	Amount decimal.Decimal
}

// ExchangeRateService configures local-currency rates.
type ExchangeRateService interface {
	List(ctx context.Context) ([]domain.ExchangeRate, error)
	// Create configures a rate and returns the refreshed rate list.
	Create(ctx context.Context, fromCurrency string, rate decimal.Decimal) ([]domain.ExchangeRate, error)
}

// SellerService toggles wallet seller eligibility.
type SellerService interface {
	ListEligible(ctx context.Context, req domain.PageRequest, search string) (*domain.Page[domain.EligibleSeller], error)
	Activate(ctx context.Context, userID int64, whatsapp string) (*domain.SellerChange, error)
	Deactivate(ctx context.Context, userID int64) (*domain.SellerChange, error)
	UpdateContact(ctx context.Context, userID int64, whatsapp string) (*domain.SellerChange, error)
}

// PinService lists PINs and triggers manual refunds.
type PinService interface {
	List(ctx context.Context, filter PinFilter) (*domain.Page[domain.Pin], error)
	Refund(ctx context.Context, pinID int64, reason string) error
}

// CurrencyService builds and selects display currencies.
type CurrencyService interface {
	Available(ctx context.Context) ([]domain.DisplayCurrency, error)
	// Resolve returns the display currency for code, falling back to USD.
	Resolve(ctx context.Context, code string) domain.DisplayCurrency
	Select(ctx context.Context, sessionID uuid.UUID, code string) (domain.DisplayCurrency, error)
}

// EntityService backs the courier, customer, order, delivery and stock-exit pages.
type EntityService interface {
	GetCourier(ctx context.Context, id int64) (*domain.User, error)
	UpdateCourier(ctx context.Context, id int64, update domain.CourierUpdate) error
	GetCustomer(ctx context.Context, id int64) (*domain.User, error)
	UpdateCustomer(ctx context.Context, id int64, update domain.CustomerUpdate) error
	GetOrder(ctx context.Context, id int64, currency domain.DisplayCurrency) (*OrderDetail, error)
	ListOrders(ctx context.Context, req domain.PageRequest, assignableOnly bool) (*domain.Page[domain.Order], error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	GetDeliveryEdit(ctx context.Context, orderID int64) (*DeliveryEdit, error)
	SaveDelivery(ctx context.Context, orderID int64, req DeliverySave) error
	GetStockExit(ctx context.Context, id int64) (*domain.StockExit, error)
	OperationalStats(ctx context.Context) (domain.OperationalStats, error)
}

// OrderDetail is an order with its amounts rendered in a display currency.
type OrderDetail struct {
	Order          *domain.Order
	Currency       domain.DisplayCurrency
	TotalFormatted string
	ItemPrices     []string
}

// DeliveryEdit is the data behind the delivery edit form.
type DeliveryEdit struct {
	Order     *domain.Order
	Personnel []domain.DeliveryPerson
}

// DeliverySave holds the delivery edit form submission.
type DeliverySave struct {
	Status           string
	DeliveryPersonID *int64
	Address          string
	Notes            string
}

// AuditService records admin mutations.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
}
