package postgres

import (
	"context"
	"fmt"
	"strings"

	"wallet-admin-console/internal/core/domain"
	"wallet-admin-console/internal/core/ports"
)

// AuditRepo implements ports.AuditRepository.
type AuditRepo struct {
	pool Pool
}

var _ ports.AuditRepository = (*AuditRepo)(nil)

// NewAuditRepo creates a PostgreSQL-backed audit repository.
func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

// Create inserts a single audit entry.
func (r *AuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	query := `INSERT INTO admin_audit_logs (id, admin_user_id, action, resource_type, resource_id, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		log.ID, log.AdminUserID, string(log.Action), log.ResourceType,
		nullable(log.ResourceID), nullable(log.Details), log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List returns a page of audit entries, newest first, with the total count.
func (r *AuditRepo) List(ctx context.Context, params ports.AuditListParams) ([]domain.AuditLog, int64, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if params.AdminUserID != nil {
		conditions = append(conditions, fmt.Sprintf("admin_user_id = $%d", argIdx))
		args = append(args, *params.AdminUserID)
		argIdx++
	}
	if params.Action != nil {
		conditions = append(conditions, fmt.Sprintf("action = $%d", argIdx))
		args = append(args, string(*params.Action))
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM admin_audit_logs %s", where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count audit logs: %w", err)
	}

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 || size > domain.MaxPerPage {
		size = domain.DefaultWalletsPerPage
	}
	offset := (page - 1) * size

	dataQuery := fmt.Sprintf(`SELECT id, admin_user_id, action, resource_type, COALESCE(resource_id, ''),
		COALESCE(details::text, ''), ip_address, created_at
		FROM admin_audit_logs %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, argIdx, argIdx+1)
	args = append(args, size, offset)

	rows, err := r.pool.Query(ctx, dataQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	logs := []domain.AuditLog{}
	for rows.Next() {
		var l domain.AuditLog
		var action string
		if err := rows.Scan(
			&l.ID, &l.AdminUserID, &action, &l.ResourceType,
			&l.ResourceID, &l.Details, &l.IPAddress, &l.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan audit log row: %w", err)
		}
		l.Action = domain.AuditAction(action)
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate audit log rows: %w", err)
	}
	return logs, total, nil
}

// nullable maps "" to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
