package readstore

import (
	"context"
	"log/slog"

	"support-notify/internal/infra"
	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const templateViewColumns = `
	id, tenant_id, name, display_name, description,
	channel, event_type, subject, body, html_body,
	language, is_active, is_default, version,
	created_at, updated_at`

type templateReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTemplateReadStore(pool *pgxpool.Pool, logger *slog.Logger) queries.TemplateReadStore {
	return &templateReadStore{pool: pool, logger: logger}
}

func (s *templateReadStore) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*queries.TemplateView, error) {
	query := `SELECT ` + templateViewColumns + ` FROM notification_templates WHERE tenant_id = $1 AND id = $2`

	v, err := scanTemplateView(s.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to read template", err)
	}
	return v, nil
}

func (s *templateReadStore) FindByChannel(ctx context.Context, tenantID string, channel string) ([]*queries.TemplateView, error) {
	query := `
		SELECT ` + templateViewColumns + `
		FROM notification_templates
		WHERE tenant_id = $1 AND channel = $2
		ORDER BY name ASC`

	return s.queryViews(ctx, query, tenantID, channel)
}

func (s *templateReadStore) FindAll(ctx context.Context, tenantID string) ([]*queries.TemplateView, error) {
	query := `
		SELECT ` + templateViewColumns + `
		FROM notification_templates
		WHERE tenant_id = $1
		ORDER BY name ASC`

	return s.queryViews(ctx, query, tenantID)
}

func (s *templateReadStore) queryViews(ctx context.Context, query string, args ...any) ([]*queries.TemplateView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list templates", err)
	}
	defer rows.Close()

	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.TemplateView, error) {
		return scanTemplateView(row)
	})
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to scan template list", err)
	}
	return views, nil
}

func scanTemplateView(row pgx.Row) (*queries.TemplateView, error) {
	var v queries.TemplateView
	err := row.Scan(
		&v.ID, &v.TenantID, &v.Name, &v.DisplayName, &v.Description,
		&v.Channel, &v.EventType, &v.Subject, &v.Body, &v.HTMLBody,
		&v.Language, &v.IsActive, &v.IsDefault, &v.Version,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
