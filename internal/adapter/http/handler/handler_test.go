package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wallet-admin-console/internal/adapter/http/middleware"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/internal/core/ports/mocks"
	"wallet-admin-console/internal/view"
	"wallet-admin-console/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testJWT = "test-jwt"

type testEnv struct {
	router   *gin.Engine
	hub      *view.Hub
	session  *domain.Session
	auth     *mocks.MockAuthService
	token    *mocks.MockTokenService
	wallet   *mocks.MockWalletService
	rate     *mocks.MockExchangeRateService
	seller   *mocks.MockSellerService
	pin      *mocks.MockPinService
	currency *mocks.MockCurrencyService
	entity   *mocks.MockEntityService
	audit    *mocks.MockAuditService
}

func newTestEnv(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	e := &testEnv{
		hub:      view.NewHub(time.Hour),
		session:  &domain.Session{ID: uuid.New(), UserID: 1, Name: "Root", Email: "root@example.com", Role: domain.RoleSuperAdmin, DisplayCurrency: "USD"},
		auth:     mocks.NewMockAuthService(ctrl),
		token:    mocks.NewMockTokenService(ctrl),
		wallet:   mocks.NewMockWalletService(ctrl),
		rate:     mocks.NewMockExchangeRateService(ctrl),
		seller:   mocks.NewMockSellerService(ctrl),
		pin:      mocks.NewMockPinService(ctrl),
		currency: mocks.NewMockCurrencyService(ctrl),
		entity:   mocks.NewMockEntityService(ctrl),
		audit:    mocks.NewMockAuditService(ctrl),
	}
	e.audit.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	e.router = SetupRouter(RouterDeps{
		AuthSvc:     e.auth,
		TokenSvc:    e.token,
		WalletSvc:   e.wallet,
		RateSvc:     e.rate,
		SellerSvc:   e.seller,
		PinSvc:      e.pin,
		CurrencySvc: e.currency,
		EntitySvc:   e.entity,
		AuditSvc:    e.audit,
		Hub:         e.hub,
		Mode:        gin.TestMode,
		Logger:      zerolog.Nop(),
	})
	return e
}

// signedIn makes every request carrying testJWT resolve to e.session.
func (e *testEnv) signedIn() *testEnv {
	e.token.EXPECT().Validate(testJWT).Return(&ports.TokenClaims{SessionID: e.session.ID}, nil).AnyTimes()
	e.auth.EXPECT().Resolve(gomock.Any(), e.session.ID).Return(&ports.ResolvedSession{
		Session:     e.session,
		AccessToken: "upstream-access",
	}, nil).AnyTimes()
	return e
}

func (e *testEnv) displayIn(c domain.DisplayCurrency) {
	e.currency.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(c).AnyTimes()
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	return e.doIn("", method, path, body)
}

// doIn sends the request from the screen instance named instance.
func (e *testEnv) doIn(instance, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	var req *http.Request
	if reader != nil {
		req = httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testJWT)
	if instance != "" {
		req.Header.Set(middleware.HeaderViewInstance, instance)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	return data
}

func assertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) map[string]interface{} {
	t.Helper()
	assert.Equal(t, status, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, code, resp["error_code"])
	return resp
}

// --- Auth Handler Tests ---

func TestLogin_Success(t *testing.T) {
	e := newTestEnv(t)
	expires := time.Now().Add(12 * time.Hour)

	e.auth.EXPECT().Login(gomock.Any(), "root@example.com", "s3cret&<pass>").Return(&ports.LoginResult{
		Token:     "console-jwt",
		ExpiresAt: expires,
		Session:   e.session,
	}, nil)

	w := e.do(http.MethodPost, "/api/v1/auth/login", `{"email":"root@example.com","password":"s3cret&<pass>"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataOf(t, w)
	assert.Equal(t, "console-jwt", data["token"])
	assert.Equal(t, float64(expires.Unix()), data["expiry"])
	session := data["session"].(map[string]interface{})
	assert.Equal(t, "super_admin", session["role"])
	assert.Equal(t, "USD", session["display_currency"])
}

func TestLogin_ValidationError(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/api/v1/auth/login", `{"email":"root@example.com"}`)
	assertError(t, w, http.StatusBadRequest, "VAL_001")

	w = e.do(http.MethodPost, "/api/v1/auth/login", `not json`)
	assertError(t, w, http.StatusBadRequest, "VAL_001")
}

func TestLogin_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"bad credentials", apperror.ErrInvalidCredentials(), http.StatusUnauthorized, "AUTH_001"},
		{"not super admin", apperror.ErrNotSuperAdmin(), http.StatusForbidden, "AUTH_002"},
		{"upstream down", apperror.ErrNetwork(errors.New("refused")), http.StatusBadGateway, "NET_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv(t)
			e.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := e.do(http.MethodPost, "/api/v1/auth/login", `{"email":"a@b.c","password":"x"}`)
			assertError(t, w, tt.status, tt.code)
		})
	}
}

func TestProtectedRoute_NoSession(t *testing.T) {
	e := newTestEnv(t)
	e.token.EXPECT().Validate(testJWT).Return(nil, errors.New("token is expired"))

	w := e.do(http.MethodGet, "/api/v1/wallets", "")
	resp := assertError(t, w, http.StatusUnauthorized, "AUTH_003")
	assert.Equal(t, "Session expired, please sign in again", resp["message"])
}

func TestLogout_DropsViews(t *testing.T) {
	e := newTestEnv(t).signedIn()
	e.displayIn(domain.USD)

	e.wallet.EXPECT().ListWallets(gomock.Any(), gomock.Any()).Return(&domain.Page[domain.Wallet]{Page: 1, PerPage: 20}, nil)
	e.auth.EXPECT().Logout(gomock.Any(), e.session.ID).Return(nil)

	require.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/v1/wallets", "").Code)
	assert.Equal(t, 1, e.hub.Len())

	w := e.do(http.MethodPost, "/api/v1/auth/logout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, e.hub.Len())
}

func TestMe(t *testing.T) {
	e := newTestEnv(t).signedIn()

	w := e.do(http.MethodGet, "/api/v1/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, float64(1), data["user_id"])
	assert.Equal(t, "root@example.com", data["email"])
}

func TestCurrencies(t *testing.T) {
	e := newTestEnv(t).signedIn()

	e.currency.EXPECT().Available(gomock.Any()).Return([]domain.DisplayCurrency{
		domain.USD,
		{Code: "XAF", Symbol: "FCFA"},
	}, nil)

	w := e.do(http.MethodGet, "/api/v1/currencies", "")
	require.Equal(t, http.StatusOK, w.Code)
	data := dataOf(t, w)
	assert.Equal(t, "USD", data["selected"])
	assert.Equal(t, "ready", data["state"])
	assert.Len(t, data["items"], 2)
}

func TestSelectCurrency(t *testing.T) {
	e := newTestEnv(t).signedIn()

	e.currency.EXPECT().Select(gomock.Any(), e.session.ID, "xaf").
		Return(domain.DisplayCurrency{Code: "XAF", Symbol: "FCFA"}, nil)

	w := e.do(http.MethodPut, "/api/v1/session/currency", `{"code":"xaf"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "XAF", dataOf(t, w)["code"])

	w = e.do(http.MethodPut, "/api/v1/session/currency", `{"code":"x1"}`)
	resp := assertError(t, w, http.StatusBadRequest, "VAL_001")
	assert.Equal(t, "Currency code must be exactly 3 letters", resp["message"])
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		redisErr   error
		wantCode   int
		wantStatus string
	}{
		{"all healthy", nil, http.StatusOK, "healthy"},
		{"redis down", errors.New("connection refused"), http.StatusServiceUnavailable, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			pg := mocks.NewMockHealthChecker(ctrl)
			rd := mocks.NewMockHealthChecker(ctrl)
			pg.EXPECT().Ping(gomock.Any()).Return(nil)
			pg.EXPECT().Name().Return("postgresql").AnyTimes()
			rd.EXPECT().Ping(gomock.Any()).Return(tt.redisErr)
			rd.EXPECT().Name().Return("redis").AnyTimes()

			r := gin.New()
			r.GET("/health", HealthCheck(pg, rd))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.wantStatus, resp["status"])
			deps := resp["dependencies"].(map[string]interface{})
			assert.Contains(t, deps, "postgresql")
			assert.Contains(t, deps, "redis")
		})
	}
}

// --- Audit Handler Tests ---

func TestAuditLogs_List(t *testing.T) {
	e := newTestEnv(t).signedIn()
	admin := int64(1)
	action := domain.AuditActionPinRefund

	e.audit.EXPECT().List(gomock.Any(), ports.AuditListParams{
		AdminUserID: &admin,
		Action:      &action,
		Page:        2,
		PageSize:    10,
	}).Return([]domain.AuditLog{{ID: uuid.New(), Action: action, AdminUserID: &admin}}, int64(11), nil)

	w := e.do(http.MethodGet, "/api/v1/audit-logs?admin_user_id=1&action=PIN_REFUND&page=2&per_page=10", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := dataOf(t, w)
	assert.Equal(t, float64(2), data["page"])
	assert.Equal(t, float64(1), data["page_index"])
	assert.Equal(t, float64(2), data["total_pages"])

	w = e.do(http.MethodGet, "/api/v1/audit-logs?admin_user_id=abc", "")
	assertError(t, w, http.StatusBadRequest, "VAL_001")
}

func TestUnknownRoute(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(http.MethodGet, "/api/v1/payments", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, strings.Contains(w.Body.String(), "data"))
}
