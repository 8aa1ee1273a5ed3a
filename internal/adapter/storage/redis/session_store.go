package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// SessionStore implements ports.SessionStore. Sessions are stored as JSON
// under session:<uuid> and expire with the key.
type SessionStore struct {
	client goredis.UniversalClient
	prefix string
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a Redis-backed session store.
func NewSessionStore(client goredis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: "session:",
	}
}

func (s *SessionStore) key(id uuid.UUID) string {
	return s.prefix + id.String()
}

// Save writes the session. A non-positive ttl updates an existing session
// in place and keeps its expiry; it never resurrects an expired one.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	args := goredis.SetArgs{TTL: ttl}
	if ttl <= 0 {
		args = goredis.SetArgs{Mode: "XX", KeepTTL: true}
	}
	err = s.client.SetArgs(ctx, s.key(session.ID), payload, args).Err()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return fmt.Errorf("redis save session: %w", err)
	}
	return nil
}

// Get returns nil, nil when the session is unknown or expired.
func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &session, nil
}

// Delete removes the session. Deleting an unknown session is not an error.
func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}
