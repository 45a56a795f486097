package request

import (
	"strings"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	RecipientID    uuid.UUID  `json:"recipient_id" binding:"required"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	RecipientName  string     `json:"recipient_name,omitempty"`
	Channel        string     `json:"channel" binding:"required"`
	Priority       string     `json:"priority,omitempty"`
	EventType      string     `json:"event_type,omitempty"`
	EventID        *uuid.UUID `json:"event_id,omitempty"`
	TemplateID     *uuid.UUID `json:"template_id,omitempty"`
	TemplateName   *string    `json:"template_name,omitempty"`
	Subject        string     `json:"subject,omitempty"`
	Body           string     `json:"body,omitempty"`
	HTMLBody       *string    `json:"html_body,omitempty"`
	Destination    string     `json:"destination" binding:"required"`
	Sender         *string    `json:"sender,omitempty"`
	Language       string     `json:"language,omitempty"`
	ScheduledAt    *time.Time `json:"scheduled_at,omitempty"`
	MaxAttempts    *int32     `json:"max_attempts,omitempty"`

	Metadata  map[string]string `json:"metadata,omitempty"`
	Variables map[string]string `json:"variables,omitempty"`
	Delivery  map[string]string `json:"delivery_config,omitempty"`
	Tags      []string          `json:"tags,omitempty"`
}

func (r CreateNotificationRequest) ToCommand() (commands.CreateNotificationRequest, error) {
	channel, err := notification.NewChannel(strings.ToLower(strings.TrimSpace(r.Channel)))
	if err != nil {
		return commands.CreateNotificationRequest{}, err
	}
	priority, err := notification.NewPriority(strings.ToLower(strings.TrimSpace(r.Priority)))
	if err != nil {
		return commands.CreateNotificationRequest{}, err
	}

	return commands.CreateNotificationRequest{
		RecipientID:       r.RecipientID,
		RecipientEmail:    r.RecipientEmail,
		RecipientName:     r.RecipientName,
		Channel:           channel,
		Priority:          priority,
		EventType:         r.EventType,
		EventID:           r.EventID,
		TemplateID:        r.TemplateID,
		TemplateName:      r.TemplateName,
		Subject:           r.Subject,
		Body:              r.Body,
		HTMLBody:          r.HTMLBody,
		Destination:       strings.TrimSpace(r.Destination),
		Sender:            r.Sender,
		Language:          r.Language,
		ScheduledAt:       r.ScheduledAt,
		MaxAttempts:       r.MaxAttempts,
		Metadata:          r.Metadata,
		TemplateVariables: r.Variables,
		DeliveryConfig:    r.Delivery,
		Tags:              r.Tags,
	}, nil
}
