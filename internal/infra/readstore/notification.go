package readstore

import (
	"context"
	"log/slog"
	"time"

	"support-notify/internal/infra"
	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationViewColumns = `
	id, tenant_id, recipient_id, recipient_email, recipient_name,
	channel, priority, status, event_type, event_id,
	template_id, template_name, subject, body, html_body,
	destination, sender,
	scheduled_at, sent_at, delivered_at, opened_at, clicked_at,
	attempt_count, max_attempts, next_retry_at,
	external_id, provider_response, last_error,
	metadata, tags,
	created_at, updated_at`

const notificationListColumns = `
	id, recipient_id, recipient_email, channel, priority, status,
	event_type, subject, sent_at, created_at`

type notificationReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationReadStore(pool *pgxpool.Pool, logger *slog.Logger) queries.NotificationReadStore {
	return &notificationReadStore{pool: pool, logger: logger}
}

func (s *notificationReadStore) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*queries.NotificationView, error) {
	query := `SELECT ` + notificationViewColumns + ` FROM notifications WHERE tenant_id = $1 AND id = $2`

	var v queries.NotificationView
	err := s.pool.QueryRow(ctx, query, tenantID, id).Scan(
		&v.ID, &v.TenantID, &v.RecipientID, &v.RecipientEmail, &v.RecipientName,
		&v.Channel, &v.Priority, &v.Status, &v.EventType, &v.EventID,
		&v.TemplateID, &v.TemplateName, &v.Subject, &v.Body, &v.HTMLBody,
		&v.Destination, &v.Sender,
		&v.ScheduledAt, &v.SentAt, &v.DeliveredAt, &v.OpenedAt, &v.ClickedAt,
		&v.AttemptCount, &v.MaxAttempts, &v.NextRetryAt,
		&v.ExternalID, &v.ProviderResponse, &v.LastError,
		&v.Metadata, &v.Tags,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to read notification", err)
	}
	return &v, nil
}

func (s *notificationReadStore) FindByRecipientFirstPage(ctx context.Context, tenantID string, recipientID uuid.UUID, limit int32) ([]*queries.NotificationListItem, error) {
	query := `
		SELECT ` + notificationListColumns + `
		FROM notifications
		WHERE tenant_id = $1 AND recipient_id = $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	return s.queryList(ctx, query, tenantID, recipientID, limit)
}

func (s *notificationReadStore) FindByRecipientKeyset(ctx context.Context, tenantID string, recipientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationListItem, error) {
	query := `
		SELECT ` + notificationListColumns + `
		FROM notifications
		WHERE tenant_id = $1 AND recipient_id = $2
		  AND (created_at, id) < ($3, $4)
		ORDER BY created_at DESC, id DESC
		LIMIT $5`

	return s.queryList(ctx, query, tenantID, recipientID, lastCreatedAt, lastID, limit)
}

func (s *notificationReadStore) FindByEvent(ctx context.Context, tenantID, eventType string, eventID uuid.UUID) ([]*queries.NotificationListItem, error) {
	query := `
		SELECT ` + notificationListColumns + `
		FROM notifications
		WHERE tenant_id = $1 AND event_type = $2 AND event_id = $3
		ORDER BY created_at DESC, id DESC`

	return s.queryList(ctx, query, tenantID, eventType, eventID)
}

func (s *notificationReadStore) queryList(ctx context.Context, query string, args ...any) ([]*queries.NotificationListItem, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to list notifications", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*queries.NotificationListItem, error) {
		var item queries.NotificationListItem
		err := row.Scan(
			&item.ID, &item.RecipientID, &item.RecipientEmail, &item.Channel,
			&item.Priority, &item.Status, &item.EventType, &item.Subject,
			&item.SentAt, &item.CreatedAt,
		)
		return &item, err
	})
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to scan notification list", err)
	}
	return items, nil
}
