package repository

import (
	"context"
	"log/slog"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/infra"
	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `
	id, tenant_id, recipient_id, recipient_email, recipient_name,
	channel, priority, status, event_type, event_id,
	template_id, template_name, subject, body, html_body,
	destination, sender,
	scheduled_at, sent_at, delivered_at, opened_at, clicked_at,
	attempt_count, max_attempts, next_retry_at,
	external_id, provider_response, last_error,
	metadata, template_variables, delivery_config, tags,
	created_at, updated_at`

// priorityWeight mirrors Priority.Weight for the pickup ordering.
const priorityWeight = `
	CASE priority
		WHEN 'critical' THEN 5
		WHEN 'urgent' THEN 4
		WHEN 'high' THEN 3
		WHEN 'normal' THEN 2
		ELSE 1
	END`

// pickupOrder is shared by the ready and retry collection queries: highest
// priority first, then oldest first within a priority.
const pickupOrder = priorityWeight + ` DESC, created_at ASC`

type notificationRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepository(pool *pgxpool.Pool, logger *slog.Logger) shared.NotificationRepository {
	return &notificationRepository{pool: pool, logger: logger}
}

func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
		        $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
		        $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		        $31, $32, $33, $34)`

	_, err := r.pool.Exec(ctx, query,
		n.ID, n.TenantID, n.RecipientID, n.RecipientEmail, n.RecipientName,
		n.Channel, n.Priority, n.Status, n.EventType, n.EventID,
		n.TemplateID, n.TemplateName, n.Subject, n.Body, n.HTMLBody,
		n.Destination, n.Sender,
		n.ScheduledAt, n.SentAt, n.DeliveredAt, n.OpenedAt, n.ClickedAt,
		n.AttemptCount, n.MaxAttempts, n.NextRetryAt,
		n.ExternalID, n.ProviderResponse, n.LastError,
		n.Metadata, n.TemplateVariables, n.DeliveryConfig, n.Tags,
		n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to insert notification", err)
	}
	return nil
}

func (r *notificationRepository) FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*notification.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE tenant_id = $1 AND id = $2`

	n, err := scanNotification(r.pool.QueryRow(ctx, query, tenantID, id))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find notification by id", err)
	}
	return n, nil
}

func (r *notificationRepository) FindByExternalID(ctx context.Context, tenantID, externalID string) (*notification.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE tenant_id = $1 AND external_id = $2`

	n, err := scanNotification(r.pool.QueryRow(ctx, query, tenantID, externalID))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to find notification by external id", err)
	}
	return n, nil
}

// ClaimForProcessing races on the status guard: only one caller observes the
// row as pending, everyone else sees zero rows.
func (r *notificationRepository) ClaimForProcessing(ctx context.Context, tenantID string, id uuid.UUID, now time.Time) (*notification.Notification, error) {
	query := `
		UPDATE notifications
		SET status = 'processing',
		    attempt_count = attempt_count + 1,
		    next_retry_at = NULL,
		    updated_at = $3
		WHERE tenant_id = $1 AND id = $2
		  AND status = 'pending'
		  AND (scheduled_at IS NULL OR scheduled_at <= $3)
		RETURNING ` + notificationColumns

	n, err := scanNotification(r.pool.QueryRow(ctx, query, tenantID, id, now))
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, "failed to claim notification", err)
	}
	return n, nil
}

func (r *notificationRepository) UpdateFromProcessing(ctx context.Context, n *notification.Notification) (bool, error) {
	query := `
		UPDATE notifications
		SET status = $3, subject = $4, body = $5, html_body = $6,
		    sent_at = $7, attempt_count = $8, next_retry_at = $9,
		    external_id = $10, provider_response = $11, last_error = $12,
		    updated_at = $13
		WHERE tenant_id = $1 AND id = $2 AND status = 'processing'`

	tag, err := r.pool.Exec(ctx, query,
		n.TenantID, n.ID,
		n.Status, n.Subject, n.Body, n.HTMLBody,
		n.SentAt, n.AttemptCount, n.NextRetryAt,
		n.ExternalID, n.ProviderResponse, n.LastError,
		n.UpdatedAt,
	)
	if err != nil {
		return false, infra.WrapPgErr(r.logger, "failed to persist send outcome", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *notificationRepository) RecordLateResult(ctx context.Context, tenantID string, id uuid.UUID, externalID, providerResponse, lastError *string, now time.Time) error {
	query := `
		UPDATE notifications
		SET external_id = COALESCE($3, external_id),
		    provider_response = COALESCE($4, provider_response),
		    last_error = COALESCE($5, last_error),
		    updated_at = $6
		WHERE tenant_id = $1 AND id = $2`

	if _, err := r.pool.Exec(ctx, query, tenantID, id, externalID, providerResponse, lastError, now); err != nil {
		return infra.WrapPgErr(r.logger, "failed to record late send result", err)
	}
	return nil
}

func (r *notificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	query := `
		UPDATE notifications
		SET status = $3, sent_at = $4, delivered_at = $5, opened_at = $6,
		    clicked_at = $7, attempt_count = $8, next_retry_at = $9,
		    external_id = $10, provider_response = $11, last_error = $12,
		    updated_at = $13
		WHERE tenant_id = $1 AND id = $2`

	tag, err := r.pool.Exec(ctx, query,
		n.TenantID, n.ID,
		n.Status, n.SentAt, n.DeliveredAt, n.OpenedAt,
		n.ClickedAt, n.AttemptCount, n.NextRetryAt,
		n.ExternalID, n.ProviderResponse, n.LastError,
		n.UpdatedAt,
	)
	if err != nil {
		return infra.WrapPgErr(r.logger, "failed to update notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(r.logger, infra.KindNotFound, "notification not found for update", nil)
	}
	return nil
}

func (r *notificationRepository) FindReadyToSend(ctx context.Context, tenantID string, now time.Time, limit int32) ([]*notification.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE tenant_id = $1
		  AND status = 'pending'
		  AND next_retry_at IS NULL
		  AND (scheduled_at IS NULL OR scheduled_at <= $2)
		ORDER BY ` + pickupOrder + `
		LIMIT $3`

	return r.queryMany(ctx, "failed to list ready notifications", query, tenantID, now, limit)
}

func (r *notificationRepository) FindReadyForRetry(ctx context.Context, tenantID string, now time.Time, limit int32) ([]*notification.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE tenant_id = $1
		  AND status = 'pending'
		  AND next_retry_at IS NOT NULL
		  AND next_retry_at <= $2
		ORDER BY ` + pickupOrder + `
		LIMIT $3`

	return r.queryMany(ctx, "failed to list retry notifications", query, tenantID, now, limit)
}

func (r *notificationRepository) MarkExpired(ctx context.Context, tenantID string, before time.Time, now time.Time) (int64, error) {
	query := `
		UPDATE notifications
		SET status = 'expired', updated_at = $3
		WHERE tenant_id = $1
		  AND status = 'pending'
		  AND scheduled_at IS NOT NULL
		  AND scheduled_at < $2`

	tag, err := r.pool.Exec(ctx, query, tenantID, before, now)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to expire stale notifications", err)
	}
	return tag.RowsAffected(), nil
}

func (r *notificationRepository) DeleteTerminalBefore(ctx context.Context, tenantID string, before time.Time) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE tenant_id = $1
		  AND status = ANY($2)
		  AND created_at < $3`

	statuses := make([]string, len(notification.TerminalStatuses))
	for i, s := range notification.TerminalStatuses {
		statuses[i] = string(s)
	}

	tag, err := r.pool.Exec(ctx, query, tenantID, statuses, before)
	if err != nil {
		return 0, infra.WrapPgErr(r.logger, "failed to purge terminal notifications", err)
	}
	return tag.RowsAffected(), nil
}

func (r *notificationRepository) queryMany(ctx context.Context, msg, query string, args ...any) ([]*notification.Notification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapPgErr(r.logger, msg, err)
	}
	defer rows.Close()

	var result []*notification.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, infra.WrapPgErr(r.logger, msg, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(r.logger, msg, err)
	}
	return result, nil
}

func scanNotification(row pgx.Row) (*notification.Notification, error) {
	var n notification.Notification
	err := row.Scan(
		&n.ID, &n.TenantID, &n.RecipientID, &n.RecipientEmail, &n.RecipientName,
		&n.Channel, &n.Priority, &n.Status, &n.EventType, &n.EventID,
		&n.TemplateID, &n.TemplateName, &n.Subject, &n.Body, &n.HTMLBody,
		&n.Destination, &n.Sender,
		&n.ScheduledAt, &n.SentAt, &n.DeliveredAt, &n.OpenedAt, &n.ClickedAt,
		&n.AttemptCount, &n.MaxAttempts, &n.NextRetryAt,
		&n.ExternalID, &n.ProviderResponse, &n.LastError,
		&n.Metadata, &n.TemplateVariables, &n.DeliveryConfig, &n.Tags,
		&n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
