package service

import (
	"context"
	"fmt"
	"time"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
	"wallet-admin-console/pkg/apperror"

	"github.com/rs/zerolog"
)

const auditWriteTimeout = 5 * time.Second

type auditService struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

// NewAuditService creates a new audit service.
// If repo is nil, audit logs are only written to the logger.
func NewAuditService(repo ports.AuditRepository, log zerolog.Logger) ports.AuditService {
	return &auditService{repo: repo, log: log}
}

// Log records an audit entry asynchronously (fire-and-forget).
// The write outlives the request but not the timeout.
func (s *auditService) Log(ctx context.Context, entry *domain.AuditLog) {
	writeCtx := context.WithoutCancel(ctx)
	go func() {
		ev := s.log.Info().
			Str("action", string(entry.Action)).
			Str("resource_type", entry.ResourceType).
			Str("resource_id", entry.ResourceID).
			Str("ip", entry.IPAddress)
		if entry.AdminUserID != nil {
			ev = ev.Int64("admin_user_id", *entry.AdminUserID)
		}
		ev.Msg("audit")

		if s.repo == nil {
			return
		}
		ctx, cancel := context.WithTimeout(writeCtx, auditWriteTimeout)
		defer cancel()
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Warn().Err(err).Str("action", string(entry.Action)).Msg("failed to persist audit log")
		}
	}()
}

// List pages through the persisted audit trail.
func (s *auditService) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	if s.repo == nil {
		return []domain.AuditLog{}, 0, nil
	}
	req := domain.NewPageRequest(params.Page, params.PageSize, domain.DefaultWalletsPerPage)
	params.Page, params.PageSize = req.Page, req.PerPage

	logs, total, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, 0, apperror.ErrDatabaseError(fmt.Errorf("list audit logs: %w", err))
	}
	return logs, total, nil
}
