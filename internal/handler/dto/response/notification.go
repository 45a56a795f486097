package response

import (
	"time"

	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type NotificationResponse struct {
	ID               uuid.UUID         `json:"id"`
	TenantID         string            `json:"tenant_id"`
	RecipientID      uuid.UUID         `json:"recipient_id"`
	RecipientEmail   string            `json:"recipient_email,omitempty"`
	RecipientName    string            `json:"recipient_name,omitempty"`
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

type NotificationListItemResponse struct {
	ID             uuid.UUID  `json:"id"`
	RecipientID    uuid.UUID  `json:"recipient_id"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	Channel        string     `json:"channel"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	EventType      string     `json:"event_type,omitempty"`
	Subject        string     `json:"subject"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromNotificationView(view *queries.NotificationView) *NotificationResponse {
	var resp NotificationResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromNotificationList(items []*queries.NotificationListItem) []*NotificationListItemResponse {
	resp := make([]*NotificationListItemResponse, 0, len(items))
	for _, item := range items {
		var r NotificationListItemResponse
		_ = copier.Copy(&r, item)
		resp = append(resp, &r)
	}
	return resp
}
