package shared

import (
	"context"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/domain/template"

	"github.com/google/uuid"
)

// NotificationRepository is the write side of the notification record store.
// All status mutation funnels through domain transitions; the repository only
// persists the resulting record.
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error

	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*notification.Notification, error)
	FindByExternalID(ctx context.Context, tenantID, externalID string) (*notification.Notification, error)

	// ClaimForProcessing atomically transitions PENDING -> PROCESSING
	// (incrementing attempt_count, clearing next_retry_at) and returns the
	// claimed record. Returns a NOT_FOUND-kind error when another worker got
	// there first or the record is no longer ready.
	ClaimForProcessing(ctx context.Context, tenantID string, id uuid.UUID, now time.Time) (*notification.Notification, error)

	// UpdateFromProcessing persists a post-send record, guarded on the row
	// still being PROCESSING. Returns false without error when the guard
	// failed (e.g. the record was cancelled mid-flight).
	UpdateFromProcessing(ctx context.Context, n *notification.Notification) (bool, error)

	// RecordLateResult attaches a send outcome to a record without touching
	// its status; used when a cancelled record's in-flight attempt completes.
	RecordLateResult(ctx context.Context, tenantID string, id uuid.UUID, externalID, providerResponse, lastError *string, now time.Time) error

	// Update persists feedback/cancel/expiry mutations.
	Update(ctx context.Context, n *notification.Notification) error

	FindReadyToSend(ctx context.Context, tenantID string, now time.Time, limit int32) ([]*notification.Notification, error)
	FindReadyForRetry(ctx context.Context, tenantID string, now time.Time, limit int32) ([]*notification.Notification, error)

	// MarkExpired flips stale PENDING records with scheduled_at before the
	// cutoff to EXPIRED, returning how many were affected.
	MarkExpired(ctx context.Context, tenantID string, before time.Time, now time.Time) (int64, error)

	// DeleteTerminalBefore purges terminal records created before the cutoff.
	DeleteTerminalBefore(ctx context.Context, tenantID string, before time.Time) (int64, error)
}

// TemplateRepository is the write side of the template store.
type TemplateRepository interface {
	Create(ctx context.Context, t *template.Template) error
	Update(ctx context.Context, t *template.Template) error
	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*template.Template, error)
	FindByName(ctx context.Context, tenantID, name string) (*template.Template, error)

	// FindDefault resolves the active default template for the tuple; a
	// NOT_FOUND-kind error means none is configured.
	FindDefault(ctx context.Context, tenantID, eventType string, channel notification.Channel, language string) (*template.Template, error)

	// SetDefault marks the template as the default for its
	// (tenant, eventType, channel) tuple, clearing any previous default in
	// the same transaction so at most one default ever exists per tuple.
	SetDefault(ctx context.Context, t *template.Template) error
}

// TenantDirectory lists tenants the scheduler must iterate. Backed by a query
// over the record store for tenants with actionable work.
type TenantDirectory interface {
	// ActiveTenants lists tenants holding records a delivery batch could
	// pick up.
	ActiveTenants(ctx context.Context) ([]string, error)
	// AllTenants lists every tenant with records, for the expiry and
	// retention sweeps.
	AllTenants(ctx context.Context) ([]string, error)
}

// NotificationCache is a lazy read cache in front of the record store.
type NotificationCache interface {
	GetStats(ctx context.Context, tenantID string) ([]byte, bool)
	SetStats(ctx context.Context, tenantID string, payload []byte)
	Invalidate(ctx context.Context, tenantID string, id uuid.UUID)
}
