package handler

import (
	"wallet-admin-console/internal/adapter/http/middleware"
	redisStore "wallet-admin-console/internal/adapter/storage/redis"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	WalletSvc      ports.WalletService
	RateSvc        ports.ExchangeRateService
	SellerSvc      ports.SellerService
	PinSvc         ports.PinService
	CurrencySvc    ports.CurrencyService
	EntitySvc      ports.EntityService
	AuditSvc       ports.AuditService // nil = audit trail disabled
	Hub            *view.Hub
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	Guard          ports.SubmissionGuard      // nil = duplicate submissions allowed
	HealthCheckers []ports.HealthChecker
	Mode           string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep: PostgreSQL, Redis and the upstream backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules()

	// rate limiter middleware if the store is available, else noop
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// submission guard if redis is available, else noop
	guard := func(operation string, target middleware.TargetFunc) gin.HandlerFunc {
		if deps.Guard == nil {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.SubmissionGuard(deps.Guard, operation, target, deps.Logger)
	}
	byID := middleware.ParamTarget("id")
	byBody := middleware.BodyTarget

	authHandler := NewAuthHandler(deps.AuthSvc, deps.CurrencySvc, deps.Hub)
	walletHandler := NewWalletHandler(deps.WalletSvc, deps.CurrencySvc, deps.Hub)
	rateHandler := NewRateHandler(deps.RateSvc, deps.Hub)
	sellerHandler := NewSellerHandler(deps.SellerSvc, deps.Hub)
	pinHandler := NewPinHandler(deps.PinSvc, deps.Hub, deps.Logger)
	entityHandler := NewEntityHandler(deps.EntitySvc, deps.CurrencySvc, deps.Hub)

	v1 := r.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", rl("auth_login"), authHandler.Login)

	// --- Session-authenticated routes ---
	api := v1.Group("", middleware.SessionAuth(deps.AuthSvc, deps.TokenSvc, deps.Logger))
	read, write := rl("console_read"), rl("console_write")

	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/session", read, authHandler.Me)
	api.PUT("/session/currency", write, authHandler.SelectCurrency)
	api.GET("/currencies", read, authHandler.Currencies)

	wallets := api.Group("/wallets")
	{
		wallets.GET("", read, walletHandler.ListWallets)
		wallets.GET("/transactions", read, walletHandler.ListTransactions)
		wallets.GET("/balance", read, walletHandler.GetBalance)
		wallets.POST("/recharge", rl("wallet_recharge"), guard("wallet_recharge", byBody), walletHandler.Recharge)
		wallets.POST("/balance/recharge", rl("wallet_recharge"), guard("wallet_recharge_own", byBody), walletHandler.RechargeOwn)
		wallets.POST("/treasury", rl("wallet_recharge"), guard("treasury_generate", byBody), walletHandler.GenerateTreasury)
	}

	rates := api.Group("/exchange-rates")
	{
		rates.GET("", read, rateHandler.List)
		rates.POST("", write, guard("exchange_rate", byBody), rateHandler.Create)
	}

	sellers := api.Group("/sellers")
	{
		sellers.GET("", read, sellerHandler.ListEligible)
		sellers.GET("/active", read, walletHandler.ListActiveSellers)
		sellers.POST("/:id/activate", write, guard("seller_toggle", byID), sellerHandler.Activate)
		sellers.POST("/:id/deactivate", write, guard("seller_toggle", byID), sellerHandler.Deactivate)
		sellers.PUT("/:id/contact", write, guard("seller_contact", byID), sellerHandler.UpdateContact)
	}

	pins := api.Group("/pins")
	{
		pins.GET("", read, pinHandler.List)
		pins.POST("/:id/refund", write, guard("pin_refund", byID), pinHandler.Refund)
	}

	api.GET("/couriers/:id", read, entityHandler.GetCourier)
	api.PUT("/couriers/:id", write, guard("courier_update", byID), entityHandler.UpdateCourier)
	api.GET("/customers/:id", read, entityHandler.GetCustomer)
	api.PUT("/customers/:id", write, guard("customer_update", byID), entityHandler.UpdateCustomer)

	orders := api.Group("/orders")
	{
		orders.GET("", read, entityHandler.ListOrders)
		orders.GET("/:id", read, entityHandler.GetOrder)
		orders.PUT("/:id/status", write, guard("order_status", byID), entityHandler.UpdateOrderStatus)
	}

	api.GET("/deliveries/:id", read, entityHandler.GetDelivery)
	api.PUT("/deliveries/:id", write, guard("delivery_save", byID), entityHandler.SaveDelivery)
	api.GET("/exits/:id", read, entityHandler.GetStockExit)
	api.GET("/stats", read, entityHandler.Stats)

	if deps.AuditSvc != nil {
		api.GET("/audit-logs", read, NewAuditHandler(deps.AuditSvc).List)
	}

	return r
}
