package postgres

import (
	"context"
	"errors"
)

// The audit trail is the only thing the console keeps in PostgreSQL, so a
// reachable server without the table is still unhealthy.
const auditTableCheck = `SELECT to_regclass('admin_audit_logs') IS NOT NULL`

var errAuditTableMissing = errors.New("admin_audit_logs table is missing")

// HealthCheck reports whether audit entries can be written.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and that the audit table exists.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var ok bool
	if err := h.pool.QueryRow(ctx, auditTableCheck).Scan(&ok); err != nil {
		return err
	}
	if !ok {
		return errAuditTableMissing
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
