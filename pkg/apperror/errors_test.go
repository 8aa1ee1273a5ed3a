package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("VAL_001", "Invalid amount", http.StatusBadRequest),
			expected: "[VAL_001] Invalid amount",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
	assert.Nil(t, New("VAL_001", "test", http.StatusBadRequest).Unwrap())
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ErrSessionExpired())

	assert.True(t, HasCode(wrapped, "AUTH_003"))
	assert.False(t, HasCode(wrapped, "VAL_001"))
	assert.False(t, HasCode(errors.New("plain"), "AUTH_003"))
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
	}{
		{"InvalidAmount", ErrInvalidAmount()},
		{"MissingTarget", ErrMissingTarget()},
		{"InvalidCurrencyCode", ErrInvalidCurrencyCode()},
		{"InvalidRate", ErrInvalidRate()},
		{"WhatsAppRequired", ErrWhatsAppRequired()},
		{"SessionUserMissing", ErrSessionUserMissing()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "VAL_001", tt.err.Code)
			assert.Equal(t, http.StatusBadRequest, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestAuthErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidCredentials", ErrInvalidCredentials(), "AUTH_001", 401},
		{"NotSuperAdmin", ErrNotSuperAdmin(), "AUTH_002", 403},
		{"SessionExpired", ErrSessionExpired(), "AUTH_003", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
	assert.Equal(t, "Session expired, please sign in again", ErrSessionExpired().Message)
}

func TestBackend_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		upstream int
		want     int
	}{
		{"client error kept", http.StatusUnprocessableEntity, http.StatusUnprocessableEntity},
		{"conflict kept", http.StatusConflict, http.StatusConflict},
		{"server error becomes bad gateway", http.StatusInternalServerError, http.StatusBadGateway},
		{"odd 2xx becomes bad gateway", http.StatusOK, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Backend(tt.upstream, "PIN already refunded")
			assert.Equal(t, "BE_001", err.Code)
			assert.Equal(t, tt.want, err.HTTPStatus)
			assert.Equal(t, "PIN already refunded", err.Message)
		})
	}
}

func TestNetworkAndSystemErrors(t *testing.T) {
	inner := fmt.Errorf("dial tcp: connection refused")

	netErr := ErrNetwork(inner)
	assert.Equal(t, "NET_001", netErr.Code)
	assert.Equal(t, http.StatusBadGateway, netErr.HTTPStatus)
	assert.True(t, errors.Is(netErr, inner))

	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)

	sealErr := ErrSealFailure(inner)
	assert.Equal(t, "SYS_003", sealErr.Code)
}

func TestRequestCoordinationErrors(t *testing.T) {
	assert.Equal(t, "REQ_001", ErrSuperseded().Code)
	assert.Equal(t, http.StatusConflict, ErrSuperseded().HTTPStatus)
	assert.Equal(t, "REQ_002", ErrSubmissionInFlight().Code)
	assert.Equal(t, "RATE_001", ErrRateLimitExceeded().Code)
	assert.Equal(t, 429, ErrRateLimitExceeded().HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Order")
	assert.Equal(t, "Order not found", err.Message)
	assert.Equal(t, "BE_002", err.Code)
}
