package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// ---- Local validation (VAL) ----

// Validation is raised before any upstream call is made.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return Validation("Amount must be a number greater than zero")
}

func ErrMissingTarget() *AppError {
	return Validation("Select a wallet or a user to recharge")
}

func ErrInvalidCurrencyCode() *AppError {
	return Validation("Currency code must be exactly 3 letters")
}

func ErrInvalidRate() *AppError {
	return Validation("Exchange rate must be a number greater than zero")
}

func ErrWhatsAppRequired() *AppError {
	return Validation("A WhatsApp contact is required to activate a wallet seller")
}

func ErrSessionUserMissing() *AppError {
	return Validation("Current session has no user id")
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrNotSuperAdmin() *AppError {
	return New("AUTH_002", "Only super administrators may use this console", http.StatusForbidden)
}

// ErrSessionExpired is the single message shown for every authentication failure
// after login, whether the console session or the upstream token expired.
func ErrSessionExpired() *AppError {
	return New("AUTH_003", "Session expired, please sign in again", http.StatusUnauthorized)
}

// ---- Upstream backend (BE) & network (NET) ----

// Backend carries the upstream's own message verbatim. 4xx statuses are kept,
// anything else is reported as a bad gateway.
func Backend(status int, message string) *AppError {
	if status < http.StatusBadRequest || status >= http.StatusInternalServerError {
		status = http.StatusBadGateway
	}
	return New("BE_001", message, status)
}

func ErrNotFound(entity string) *AppError {
	return New("BE_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrNetwork(err error) *AppError {
	return Wrap("NET_001", "Network error, please try again", http.StatusBadGateway, err)
}

// ---- Request coordination (REQ) ----

func ErrSuperseded() *AppError {
	return New("REQ_001", "Request superseded by a newer one", http.StatusConflict)
}

func ErrSubmissionInFlight() *AppError {
	return New("REQ_002", "The same action is already being submitted", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrSealFailure(err error) *AppError {
	return Wrap("SYS_003", "Session sealing failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
