package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wallet-admin-console/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// SubmissionGuard implements ports.SubmissionGuard using Redis SET NX.
// The ttl bounds how long a crashed submission can block a retry.
type SubmissionGuard struct {
	client goredis.UniversalClient
	prefix string
}

var _ ports.SubmissionGuard = (*SubmissionGuard)(nil)

// NewSubmissionGuard creates a new Redis-backed submission guard.
func NewSubmissionGuard(client goredis.UniversalClient) *SubmissionGuard {
	return &SubmissionGuard{
		client: client,
		prefix: "submit:",
	}
}

func (g *SubmissionGuard) key(sessionID, operation, target string) string {
	return g.prefix + sessionID + ":" + operation + ":" + target
}

// Acquire returns true if no identical submission is in flight.
func (g *SubmissionGuard) Acquire(ctx context.Context, sessionID, operation, target string, ttl time.Duration) (bool, error) {
	result, err := g.client.SetArgs(ctx, g.key(sessionID, operation, target), 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis submission acquire: %w", err)
	}
	return result == "OK", nil
}

// Release frees the slot once the submission has settled.
func (g *SubmissionGuard) Release(ctx context.Context, sessionID, operation, target string) error {
	if err := g.client.Del(ctx, g.key(sessionID, operation, target)).Err(); err != nil {
		return fmt.Errorf("redis submission release: %w", err)
	}
	return nil
}
