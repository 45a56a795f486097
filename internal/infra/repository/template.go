package repository

import (
	"context"
	"log/slog"

	"support-notify/internal/domain/notification"
	"support-notify/internal/domain/template"
	"support-notify/internal/infra"
	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const templateColumns = `
	id, tenant_id, name, display_name, description,
	channel, event_type, subject, body, html_body,
	language, is_active, is_default, version,
	created_at, updated_at`

type templateRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewTemplateRepository(pool *pgxpool.Pool, logger *slog.Logger) shared.TemplateRepository {
	return &templateRepository{pool: pool, logger: logger}
}

func (r *templateRepository) Create(ctx context.Context, t *template.Template) error {
	query := `
		INSERT INTO notification_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.pool.Exec(ctx, query,
		t.ID, t.TenantID, t.Name, t.DisplayName, t.Description,
		t.Channel, t.EventType, t.Subject, t.Body, t.HTMLBody,
		t.Language, t.IsActive, t.IsDefault, t.Version,
		t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to insert template", err)
	}
	return nil
}

func (r *templateRepository) Update(ctx context.Context, t *template.Template) error {
	query := `
		UPDATE notification_templates
		SET display_name = $3, description = $4, subject = $5, body = $6,
		    html_body = $7, is_active = $8, is_default = $9, version = $10,
		    updated_at = $11
		WHERE tenant_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query,
		t.TenantID, t.ID,
		t.DisplayName, t.Description, t.Subject, t.Body,
		t.HTMLBody, t.IsActive, t.IsDefault, t.Version,
		t.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "template not found for update", nil)
	}
	return nil
}

func (r *templateRepository) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*template.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE tenant_id = $1 AND id = $2`

	t, err := scanTemplate(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find template by id", err)
	}
	return t, nil
}

func (r *templateRepository) FindByName(ctx context.Context, tenantID, name string) (*template.Template, error) {
	query := `SELECT ` + templateColumns + ` FROM notification_templates WHERE tenant_id = $1 AND name = $2`

	t, err := scanTemplate(r.pool.QueryRow(ctx, query, tenantID, name))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find template by name", err)
	}
	return t, nil
}

func (r *templateRepository) FindDefault(ctx context.Context, tenantID, eventType string, channel notification.Channel, language string) (*template.Template, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM notification_templates
		WHERE tenant_id = $1 AND event_type = $2 AND channel = $3 AND language = $4
		  AND is_default = TRUE AND is_active = TRUE`

	t, err := scanTemplate(r.pool.QueryRow(ctx, query, tenantID, eventType, channel, language))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find default template", err)
	}
	return t, nil
}

// SetDefault clears the previous default for the (tenant, event type, channel)
// tuple, across languages, and promotes t in one transaction, so concurrent
// promotions cannot leave two defaults behind.
func (r *templateRepository) SetDefault(ctx context.Context, t *template.Template) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	clear := `
		UPDATE notification_templates
		SET is_default = FALSE, updated_at = $4
		WHERE tenant_id = $1 AND event_type = $2 AND channel = $3
		  AND is_default = TRUE AND id <> $5`
	if _, err := tx.Exec(ctx, clear, t.TenantID, t.EventType, t.Channel, t.UpdatedAt, t.ID); err != nil {
		return infra.WrapPgErr(r.logger, "failed to clear previous default template", err)
	}

	promote := `
		UPDATE notification_templates
		SET is_default = TRUE, updated_at = $3
		WHERE tenant_id = $1 AND id = $2`
	tag, err := tx.Exec(ctx, promote, t.TenantID, t.ID, t.UpdatedAt)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to promote default template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "template not found for default promotion", nil)
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapPgErr(r.logger, "failed to commit default template change", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*template.Template, error) {
	var t template.Template
	err := row.Scan(
		&t.ID, &t.TenantID, &t.Name, &t.DisplayName, &t.Description,
		&t.Channel, &t.EventType, &t.Subject, &t.Body, &t.HTMLBody,
		&t.Language, &t.IsActive, &t.IsDefault, &t.Version,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
