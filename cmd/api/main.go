package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-admin-console/config"
	"wallet-admin-console/internal/adapter/backend"
	httpHandler "wallet-admin-console/internal/adapter/http/handler"
	pgStorage "wallet-admin-console/internal/adapter/storage/postgres"
	redisStorage "wallet-admin-console/internal/adapter/storage/redis"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/service"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/logger"
)

// idle views are evicted after this long
const viewIdleTimeout = 30 * time.Minute

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Backend.BaseURL).
		Msg("Starting Wallet Admin Console")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("WAC_JWT_SECRET must be set")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Upstream commerce API
	client, err := backend.NewClient(cfg.Backend, logger.Component(log, "backend"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create backend client")
	}

	// Initialize PostgreSQL pool (audit trail)
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	if err := pgStorage.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate audit schema")
	}
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize stores
	auditRepo := pgStorage.NewAuditRepo(pool)
	sessions := redisStorage.NewSessionStore(rdb)
	guard := redisStorage.NewSubmissionGuard(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize core services
	sealer, err := service.NewXChaChaSealer(cfg.Session.SealKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize token sealer")
	}
	if cfg.Session.SealKey == "" {
		log.Warn().Msg("No session seal key configured, sessions will not survive a restart")
	}
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	// Initialize business services
	svcLog := logger.Component(log, "service")
	authSvc := service.NewAuthService(client, sessions, sealer, tokenSvc, cfg.Backend.AccessTokenTTL, cfg.Session.TTL, svcLog)
	walletSvc := service.NewWalletService(client, svcLog)
	rates := service.NewRateCache(client, cfg.Currency.RateCacheTTL)
	rateSvc := service.NewExchangeRateService(rates, svcLog)
	sellerSvc := service.NewSellerService(client, client, svcLog)
	pinSvc := service.NewPinService(client, svcLog)
	currencySvc := service.NewCurrencyService(cfg.Currency.Catalog, rates, sessions, svcLog)
	entitySvc := service.NewEntityService(client, svcLog)
	auditSvc := service.NewAuditService(auditRepo, svcLog)

	// Per-session view state
	hub := view.NewHub(viewIdleTimeout)
	go hub.Run(ctx, time.Minute)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		WalletSvc:      walletSvc,
		RateSvc:        rateSvc,
		SellerSvc:      sellerSvc,
		PinSvc:         pinSvc,
		CurrencySvc:    currencySvc,
		EntitySvc:      entitySvc,
		AuditSvc:       auditSvc,
		Hub:            hub,
		RateLimitStore: rateLimitStore,
		Guard:          guard,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth, client},
		Mode:           cfg.Server.Mode,
		Logger:         logger.Component(log, "http"),
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
