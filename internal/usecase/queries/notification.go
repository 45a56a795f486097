package queries

import (
	"context"
	"time"

	"support-notify/internal/infra"
	"support-notify/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrNotificationNotFound = errs.New("notification not found")
	ErrTemplateNotFound     = errs.New("template not found")
	ErrInvalidCursor        = errs.New("invalid cursor")
)

// NotificationReadStore is the read side of the notification record store.
type NotificationReadStore interface {
	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*NotificationView, error)
	FindByRecipientFirstPage(ctx context.Context, tenantID string, recipientID uuid.UUID, limit int32) ([]*NotificationListItem, error)
	FindByRecipientKeyset(ctx context.Context, tenantID string, recipientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationListItem, error)
	FindByEvent(ctx context.Context, tenantID, eventType string, eventID uuid.UUID) ([]*NotificationListItem, error)
}

type TemplateReadStore interface {
	FindByID(ctx context.Context, tenantID string, id uuid.UUID) (*TemplateView, error)
	FindByChannel(ctx context.Context, tenantID string, channel string) ([]*TemplateView, error)
	FindAll(ctx context.Context, tenantID string) ([]*TemplateView, error)
}

type NotificationQueries interface {
	GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*NotificationView, error)
	ListByRecipient(ctx context.Context, tenantID string, recipientID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationListItem, *Cursor, error)
	ListByEvent(ctx context.Context, tenantID, eventType string, eventID uuid.UUID) ([]*NotificationListItem, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*NotificationView, error) {
	view, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *notificationQueriesImpl) ListByRecipient(ctx context.Context, tenantID string, recipientID uuid.UUID, cursor *Cursor, limit int) ([]*NotificationListItem, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*NotificationListItem
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.FindByRecipientFirstPage(ctx, tenantID, recipientID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.FindByRecipientKeyset(ctx, tenantID, recipientID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *notificationQueriesImpl) ListByEvent(ctx context.Context, tenantID, eventType string, eventID uuid.UUID) ([]*NotificationListItem, error) {
	return q.store.FindByEvent(ctx, tenantID, eventType, eventID)
}

type TemplateQueries interface {
	GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*TemplateView, error)
	List(ctx context.Context, tenantID string, channel string) ([]*TemplateView, error)
}

type templateQueriesImpl struct {
	store TemplateReadStore
}

func NewTemplateQueries(store TemplateReadStore) TemplateQueries {
	return &templateQueriesImpl{store: store}
}

func (q *templateQueriesImpl) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*TemplateView, error) {
	view, err := q.store.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *templateQueriesImpl) List(ctx context.Context, tenantID string, channel string) ([]*TemplateView, error) {
	if channel != "" {
		return q.store.FindByChannel(ctx, tenantID, channel)
	}
	return q.store.FindAll(ctx, tenantID)
}
