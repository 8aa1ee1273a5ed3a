package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"time"

	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"
	"wallet-admin-console/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// submissionTTL bounds how long a crashed request can hold the guard.
const submissionTTL = 30 * time.Second

// TargetFunc names what a mutation acts on.
type TargetFunc func(c *gin.Context) (string, error)

// ParamTarget targets the route parameter name.
func ParamTarget(name string) TargetFunc {
	return func(c *gin.Context) (string, error) {
		return c.Param(name), nil
	}
}

// BodyTarget targets the request body itself, so only byte-identical
// submissions collide. The body is restored for the handler.
func BodyTarget(c *gin.Context) (string, error) {
	if c.Request.Body == nil {
		return "empty", nil
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return "", err
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

// SubmissionGuard rejects a mutation while an identical one from the same
// session is still in flight. Redis failures let the request through.
func SubmissionGuard(guard ports.SubmissionGuard, operation string, target TargetFunc, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := CurrentSession(c)
		if !ok {
			c.Next()
			return
		}

		tgt, err := target(c)
		if err != nil {
			response.Error(c, apperror.Validation("cannot read request body"))
			c.Abort()
			return
		}

		sessionID := session.ID.String()
		acquired, err := guard.Acquire(c.Request.Context(), sessionID, operation, tgt, submissionTTL)
		if err != nil {
			log.Warn().Err(err).Str("operation", operation).Msg("submission guard unavailable, allowing request (degraded mode)")
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, apperror.ErrSubmissionInFlight())
			c.Abort()
			return
		}

		// released even when the client went away mid-request
		releaseCtx := context.WithoutCancel(c.Request.Context())
		defer func() {
			if err := guard.Release(releaseCtx, sessionID, operation, tgt); err != nil {
				log.Warn().Err(err).Str("operation", operation).Msg("submission guard release failed")
			}
		}()
		c.Next()
	}
}
