package middleware

import (
	"net/http"
	"strings"
	"time"

	"wallet-admin-console/internal/adapter/backend"
	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID = "X-Request-ID"
	// Identifies one open screen (a browser tab) of a session.
	HeaderViewInstance = "X-View-Instance"

	// Context keys
	CtxRequestID = response.RequestIDKey
	CtxSession   = "session"
)

// CurrentSession returns the session attached by SessionAuth.
func CurrentSession(c *gin.Context) (*domain.Session, bool) {
	v, ok := c.Get(CtxSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*domain.Session)
	return s, ok && s != nil
}

// SessionAuth validates the console JWT, resolves the session and puts a
// usable upstream access token on the request context. Every failure is
// reported as an expired session.
func SessionAuth(authSvc ports.AuthService, tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			response.Error(c, apperror.ErrSessionExpired())
			c.Abort()
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			response.Error(c, apperror.ErrSessionExpired())
			c.Abort()
			return
		}

		resolved, err := authSvc.Resolve(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !apperror.HasCode(err, "AUTH_003") {
				log.Warn().Err(err).Str("session_id", claims.SessionID.String()).Msg("session resolve failed")
			}
			response.Error(c, err)
			c.Abort()
			return
		}

		ctx := backend.WithAccessToken(c.Request.Context(), resolved.AccessToken)
		c.Request = c.Request.WithContext(ctx)
		c.Set(CtxSession, resolved.Session)
		c.Next()
	}
}

// RequestID tags every request with an id, reusing the caller's when given.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}
		c.Set(CtxRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID))
		if s, ok := CurrentSession(c); ok {
			event = event.Int64("admin_user_id", s.UserID)
		}
		if err := c.Errors.Last(); err != nil {
			event = event.Err(err.Err)
		}
		event.Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Error(c, apperror.New("SYS_001", "Internal server error", http.StatusInternalServerError))
				c.Abort()
			}
		}()
		c.Next()
	}
}
