package queries

import (
	"time"

	"github.com/google/uuid"
)

// NotificationView represents read-optimized notification data
type NotificationView struct {
	ID               uuid.UUID         `json:"id"`
	TenantID         string            `json:"tenant_id"`
	RecipientID      uuid.UUID         `json:"recipient_id"`
	RecipientEmail   string            `json:"recipient_email"`
	RecipientName    string            `json:"recipient_name"`
	Channel          string            `json:"channel"`
	Priority         string            `json:"priority"`
	Status           string            `json:"status"`
	EventType        string            `json:"event_type,omitempty"`
	EventID          *uuid.UUID        `json:"event_id,omitempty"`
	TemplateID       *uuid.UUID        `json:"template_id,omitempty"`
	TemplateName     *string           `json:"template_name,omitempty"`
	Subject          string            `json:"subject"`
	Body             string            `json:"body"`
	HTMLBody         *string           `json:"html_body,omitempty"`
	Destination      string            `json:"destination"`
	Sender           *string           `json:"sender,omitempty"`
	ScheduledAt      *time.Time        `json:"scheduled_at,omitempty"`
	SentAt           *time.Time        `json:"sent_at,omitempty"`
	DeliveredAt      *time.Time        `json:"delivered_at,omitempty"`
	OpenedAt         *time.Time        `json:"opened_at,omitempty"`
	ClickedAt        *time.Time        `json:"clicked_at,omitempty"`
	AttemptCount     int32             `json:"attempt_count"`
	MaxAttempts      int32             `json:"max_attempts"`
	NextRetryAt      *time.Time        `json:"next_retry_at,omitempty"`
	ExternalID       *string           `json:"external_id,omitempty"`
	ProviderResponse *string           `json:"provider_response,omitempty"`
	LastError        *string           `json:"last_error,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	Tags             []string          `json:"tags,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// NotificationListItem is the compact row used by paginated listings.
type NotificationListItem struct {
	ID             uuid.UUID  `json:"id"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	RecipientEmail string     `json:"recipient_email"`
	Channel        string     `json:"channel"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EventType      string     `json:"event_type,omitempty"`
	Subject        string     `json:"subject"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// TemplateView represents read-optimized template data
type TemplateView struct {
	ID          uuid.UUID `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	Description string    `json:"description,omitempty"`
	Channel     string    `json:"channel"`
	EventType   string    `json:"event_type,omitempty"`
	Subject     string    `json:"subject"`
	Body        string    `json:"body"`
	HTMLBody    *string   `json:"html_body,omitempty"`
	Language    string    `json:"language"`
	IsActive    bool      `json:"is_active"`
	IsDefault   bool      `json:"is_default"`
	Version     int32     `json:"version"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StatusCount is one bucket of the by-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// ChannelCount is one bucket of the by-channel aggregation.
type ChannelCount struct {
	Channel string `json:"channel"`
	Count   int64  `json:"count"`
}

// DeliveryCounts aggregates send outcomes over a trailing window.
type DeliveryCounts struct {
	Delivered int64 `json:"delivered"`
	Failed    int64 `json:"failed"`
	Total     int64 `json:"total"`
}

// EngagementCounts aggregates recipient engagement over a trailing window.
type EngagementCounts struct {
	Opened    int64 `json:"opened"`
	Clicked   int64 `json:"clicked"`
	Delivered int64 `json:"delivered"`
}

// StatsView is the operational statistics snapshot for a tenant.
type StatsView struct {
	TenantID       string         `json:"tenant_id"`
	Total          int64          `json:"total"`
	Pending        int64          `json:"pending"`
	Sent           int64          `json:"sent"`
	Failed         int64          `json:"failed"`
	ByStatus       []StatusCount  `json:"by_status"`
	ByChannel      []ChannelCount `json:"by_channel"`
	DeliveryRate   float64        `json:"delivery_rate"`
	EngagementRate float64        `json:"engagement_rate"`
	WindowStart    time.Time      `json:"window_start"`
	GeneratedAt    time.Time      `json:"generated_at"`
}
