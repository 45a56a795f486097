package repository

import (
	"context"
	"log/slog"

	"support-notify/internal/infra"
	"support-notify/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
)

type tenantDirectory struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewTenantDirectory lists tenants with records the scheduler might act on,
// so idle tenants cost nothing per sweep.
func NewTenantDirectory(pool *pgxpool.Pool, logger *slog.Logger) shared.TenantDirectory {
	return &tenantDirectory{pool: pool, logger: logger}
}

func (d *tenantDirectory) ActiveTenants(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tenant_id
		FROM notifications
		WHERE status IN ('pending', 'processing')
		ORDER BY tenant_id`

	return d.queryTenants(ctx, query)
}

func (d *tenantDirectory) AllTenants(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT tenant_id
		FROM notifications
		ORDER BY tenant_id`

	return d.queryTenants(ctx, query)
}

func (d *tenantDirectory) queryTenants(ctx context.Context, query string) ([]string, error) {
	rows, err := d.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapPgErr(d.logger, "failed to list active tenants", err)
	}
	defer rows.Close()

	var tenants []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapPgErr(d.logger, "failed to scan tenant id", err)
		}
		tenants = append(tenants, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(d.logger, "failed to list active tenants", err)
	}
	return tenants, nil
}
