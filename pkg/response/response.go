package response

import (
	"errors"
	"net/http"
	"time"

	"wallet-admin-console/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

// SuccessResponse is the console's success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the console's error envelope. Retryable tells the UI
// to offer a retry on the failed screen instead of a dead end.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	success(c, http.StatusOK, data)
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	success(c, http.StatusCreated, data)
}

// NoContent sends a bare 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error renders err. Anything that is not an *apperror.AppError becomes
// SYS_001 without exposing its text. Server-side failures are recorded on
// the gin context so the request log carries the cause.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.InternalError(err)
	}
	if err != nil && appErr.HTTPStatus >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Retryable: retryable(appErr),
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, SuccessResponse{
		Data:      data,
		RequestID: requestID(c),
		Timestamp: timestamp(),
	})
}

// Network failures and upstream 5xx can succeed on a second attempt;
// validation and permission errors cannot.
func retryable(e *apperror.AppError) bool {
	return e.Code == "NET_001" || e.HTTPStatus >= http.StatusInternalServerError
}

func requestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	return uuid.New().String()
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
