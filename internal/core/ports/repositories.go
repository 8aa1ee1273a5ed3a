package ports

import (
	"context"
	"time"

	"wallet-admin-console/internal/core/domain"

	"github.com/google/uuid"
)

// AuditRepository persists the admin audit trail.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	List(ctx context.Context, params AuditListParams) ([]domain.AuditLog, int64, error)
}

// AuditListParams holds filter + pagination for listing audit entries.
type AuditListParams struct {
	AdminUserID *int64
	Action      *domain.AuditAction
	Page        int
	PageSize    int
}

// SessionStore keeps console sessions. Get returns nil, nil when the
// session does not exist or has expired.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmissionGuard serializes identical mutations from one session.
type SubmissionGuard interface {
	// Acquire returns true if no identical submission is in flight.
	Acquire(ctx context.Context, sessionID, operation, target string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, sessionID, operation, target string) error
}
