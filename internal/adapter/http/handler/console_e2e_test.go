package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wallet-admin-console/config"
	"wallet-admin-console/internal/adapter/backend"
	httpHandler "wallet-admin-console/internal/adapter/http/handler"
	redisStorage "wallet-admin-console/internal/adapter/storage/redis"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/service"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const upstreamToken = "upstream-access"

// fakeUpstream is a minimal commerce backend.
type fakeUpstream struct {
	server *httptest.Server

	recharges atomic.Int64
	// rechargeGate holds recharges until it is closed.
	rechargeGate chan struct{}
	rechargeSeen chan struct{}
}

func newFakeUpstream(t *testing.T) *fakeUpstream {
	u := &fakeUpstream{
		rechargeGate: make(chan struct{}),
		rechargeSeen: make(chan struct{}, 16),
	}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "correct-horse" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid credentials"})
			return
		}
		role := "super_admin"
		if body.Username == "seller@example.com" {
			role = "seller"
		}
		writeJSON(w, http.StatusOK, map[string]any{"user": map[string]any{
			"id": 1, "username": "root", "email": body.Username, "token": upstreamToken, "role": role,
		}})
	})

	mux.HandleFunc("GET /api/v1/exchange-rates", u.authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"rates": []map[string]any{
			{"id": 1, "from_currency": "XAF", "to_currency": "USD", "rate": "0.0016", "is_active": true},
		}})
	}))

	mux.HandleFunc("GET /api/v1/wallet/all", u.authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"wallets": map[string]any{
			"data": []map[string]any{
				{"id": 11, "user": map[string]any{"id": 4, "name": "Awa"}, "balance": "40", "currency": "USD"},
			},
			"total":        1,
			"per_page":     20,
			"current_page": 1,
		}})
	}))

	mux.HandleFunc("POST /api/v1/wallet/recharge", u.authorized(func(w http.ResponseWriter, r *http.Request) {
		u.recharges.Add(1)
		select {
		case u.rechargeSeen <- struct{}{}:
		default:
		}
		<-u.rechargeGate
		writeJSON(w, http.StatusOK, map[string]any{"wallet": map[string]any{"id": 11, "balance": "90", "currency": "USD"}})
	}))

	mux.HandleFunc("POST /api/v1/wallet/pins/{id}/refund", u.authorized(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "PIN already refunded"})
	}))

	u.server = httptest.NewServer(mux)
	t.Cleanup(u.server.Close)
	return u
}

func (u *fakeUpstream) authorized(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+upstreamToken {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type consoleApp struct {
	server   *httptest.Server
	upstream *fakeUpstream
}

// newConsoleApp wires the console exactly as main does, minus PostgreSQL.
func newConsoleApp(t *testing.T) *consoleApp {
	gin.SetMode(gin.TestMode)
	log := logger.NewWithWriter("error", io.Discard)

	upstream := newFakeUpstream(t)
	client, err := backend.NewClient(config.BackendConfig{
		BaseURL: upstream.server.URL + "/api/v1",
		Timeout: 5 * time.Second,
	}, log)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	sessions := redisStorage.NewSessionStore(rdb)

	sealer, err := service.NewXChaChaSealer("")
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("e2e-secret", time.Hour, "wallet-admin-console")
	catalog := map[string]string{"USD": "$", "XAF": "FCFA"}
	rates := service.NewRateCache(client, 30*time.Second)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		AuthSvc:        service.NewAuthService(client, sessions, sealer, tokenSvc, 5*time.Minute, time.Hour, log),
		TokenSvc:       tokenSvc,
		WalletSvc:      service.NewWalletService(client, log),
		RateSvc:        service.NewExchangeRateService(rates, log),
		SellerSvc:      service.NewSellerService(client, client, log),
		PinSvc:         service.NewPinService(client, log),
		CurrencySvc:    service.NewCurrencyService(catalog, rates, sessions, log),
		EntitySvc:      service.NewEntityService(client, log),
		Hub:            view.NewHub(time.Hour),
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		Guard:          redisStorage.NewSubmissionGuard(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb), client},
		Mode:           gin.TestMode,
		Logger:         log,
	})

	app := &consoleApp{server: httptest.NewServer(router), upstream: upstream}
	t.Cleanup(app.server.Close)
	return app
}

type envelope struct {
	Data      json.RawMessage `json:"data"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
}

func (a *consoleApp) call(t *testing.T, method, path, token, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func (a *consoleApp) login(t *testing.T) string {
	t.Helper()
	status, env := a.call(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"root@example.com","password":"correct-horse"}`)
	require.Equal(t, http.StatusOK, status, env.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func TestConsole_HealthCheck(t *testing.T) {
	app := newConsoleApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestConsole_LoginRejected(t *testing.T) {
	app := newConsoleApp(t)

	status, env := app.call(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"root@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_001", env.ErrorCode)

	status, env = app.call(t, http.MethodPost, "/api/v1/auth/login", "", `{"email":"seller@example.com","password":"correct-horse"}`)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "AUTH_002", env.ErrorCode)
}

func TestConsole_DisplayCurrencyFlow(t *testing.T) {
	app := newConsoleApp(t)
	token := app.login(t)

	status, env := app.call(t, http.MethodGet, "/api/v1/wallets", token, "")
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Contains(t, string(env.Data), `"balance_formatted":"$40.00"`)

	status, env = app.call(t, http.MethodPut, "/api/v1/session/currency", token, `{"code":"xaf"}`)
	require.Equal(t, http.StatusOK, status, env.Message)

	status, env = app.call(t, http.MethodGet, "/api/v1/wallets", token, "")
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Contains(t, string(env.Data), `"balance_formatted":"25000 FCFA"`)

	status, env = app.call(t, http.MethodPut, "/api/v1/session/currency", token, `{"code":"NGN"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Currency NGN is not available", env.Message)
}

func TestConsole_LogoutEndsSession(t *testing.T) {
	app := newConsoleApp(t)
	token := app.login(t)

	status, _ := app.call(t, http.MethodPost, "/api/v1/auth/logout", token, "")
	require.Equal(t, http.StatusOK, status)

	status, env := app.call(t, http.MethodGet, "/api/v1/session", token, "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "AUTH_003", env.ErrorCode)
}

func TestConsole_UpstreamMessageVerbatim(t *testing.T) {
	app := newConsoleApp(t)
	token := app.login(t)

	status, env := app.call(t, http.MethodPost, "/api/v1/pins/7/refund", token, "")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "BE_001", env.ErrorCode)
	assert.Equal(t, "PIN already refunded", env.Message)
}

// TestConsole_DuplicateRecharge fires identical recharges while the first is
// still in flight upstream. Only the first may reach the backend.
func TestConsole_DuplicateRecharge(t *testing.T) {
	app := newConsoleApp(t)
	token := app.login(t)

	body := `{"wallet_id":11,"amount":50}`

	first := make(chan int, 1)
	go func() {
		status, _ := app.call(t, http.MethodPost, "/api/v1/wallets/recharge", token, body)
		first <- status
	}()
	<-app.upstream.rechargeSeen

	duplicates := 5
	var wg sync.WaitGroup
	var rejected atomic.Int64
	for i := 0; i < duplicates; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, env := app.call(t, http.MethodPost, "/api/v1/wallets/recharge", token, body)
			if status == http.StatusConflict && env.ErrorCode == "REQ_002" {
				rejected.Add(1)
			}
		}()
	}
	wg.Wait()

	close(app.upstream.rechargeGate)
	assert.Equal(t, http.StatusOK, <-first)
	assert.Equal(t, int64(duplicates), rejected.Load())
	assert.Equal(t, int64(1), app.upstream.recharges.Load())

	// the slot is free again once the first submission settled
	status, env := app.call(t, http.MethodPost, "/api/v1/wallets/recharge", token, body)
	assert.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, int64(2), app.upstream.recharges.Load())

	// a different amount is a different submission
	status, _ = app.call(t, http.MethodPost, "/api/v1/wallets/recharge", token, fmt.Sprintf(`{"wallet_id":11,"amount":%d}`, 60))
	assert.Equal(t, http.StatusOK, status)
}
