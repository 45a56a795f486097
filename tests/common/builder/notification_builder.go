//go:build unit

package builder

import (
	"time"

	domnotif "support-notify/internal/domain/notification"
	reqdto "support-notify/internal/handler/dto/request"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationBuilder struct {
	TenantID       string
	RecipientID    uuid.UUID
	RecipientEmail string
	RecipientName  string
	Channel        domnotif.Channel
	Priority       domnotif.Priority
	EventType      string
	EventID        *uuid.UUID
	Subject        string
	Body           string
	HTMLBody       *string
	Destination    string
	Sender         *string
	ScheduledAt    *time.Time
	MaxAttempts    *int32
	Variables      map[string]string
	Now            time.Time
}

func NewNotificationBuilder() *NotificationBuilder {
	return &NotificationBuilder{
		TenantID:       "acme",
		RecipientID:    uuid.New(),
		RecipientEmail: "agent@example.com",
		RecipientName:  "Test Agent",
		Channel:        domnotif.ChannelEmail,
		Priority:       domnotif.PriorityNormal,
		EventType:      "ticket.created",
		Subject:        "Ticket {{ticket_id}} created",
		Body:           "Hello {{name}}, a ticket was created.",
		Destination:    "agent@example.com",
		Variables:      map[string]string{"ticket_id": "T-100", "name": "Alice"},
		Now:            time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *NotificationBuilder) With(mutate func(*NotificationBuilder)) *NotificationBuilder {
	mutate(b)
	return b
}

func (b *NotificationBuilder) WithChannel(c domnotif.Channel) *NotificationBuilder {
	b.Channel = c
	return b
}

func (b *NotificationBuilder) WithScheduledAt(t time.Time) *NotificationBuilder {
	b.ScheduledAt = &t
	return b
}

func (b *NotificationBuilder) WithMaxAttempts(n int32) *NotificationBuilder {
	b.MaxAttempts = &n
	return b
}

func (b *NotificationBuilder) BuildDomain() (*domnotif.Notification, error) {
	return domnotif.New(domnotif.NewSpec{
		TenantID:          b.TenantID,
		RecipientID:       b.RecipientID,
		RecipientEmail:    b.RecipientEmail,
		RecipientName:     b.RecipientName,
		Channel:           b.Channel,
		Priority:          b.Priority,
		EventType:         b.EventType,
		EventID:           b.EventID,
		Subject:           b.Subject,
		Body:              b.Body,
		HTMLBody:          b.HTMLBody,
		Destination:       b.Destination,
		Sender:            b.Sender,
		ScheduledAt:       b.ScheduledAt,
		MaxAttempts:       b.MaxAttempts,
		TemplateVariables: b.Variables,
	}, b.Now)
}

// MustBuildDomain panics on validation failure; for cases where the builder
// defaults are known valid.
func (b *NotificationBuilder) MustBuildDomain() *domnotif.Notification {
	n, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return n
}

func (b *NotificationBuilder) BuildCreateRequestDTO() reqdto.CreateNotificationRequest {
	return reqdto.CreateNotificationRequest{
		RecipientID:    b.RecipientID,
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		Channel:        b.Channel.String(),
		Priority:       b.Priority.String(),
		EventType:      b.EventType,
		EventID:        b.EventID,
		Subject:        b.Subject,
		Body:           b.Body,
		HTMLBody:       b.HTMLBody,
		Destination:    b.Destination,
		ScheduledAt:    b.ScheduledAt,
		MaxAttempts:    b.MaxAttempts,
		Variables:      b.Variables,
	}
}

func (b *NotificationBuilder) BuildCreateCommand() commands.CreateNotificationRequest {
	return commands.CreateNotificationRequest{
		RecipientID:       b.RecipientID,
		RecipientEmail:    b.RecipientEmail,
		RecipientName:     b.RecipientName,
		Channel:           b.Channel,
		Priority:          b.Priority,
		EventType:         b.EventType,
		EventID:           b.EventID,
		Subject:           b.Subject,
		Body:              b.Body,
		HTMLBody:          b.HTMLBody,
		Destination:       b.Destination,
		ScheduledAt:       b.ScheduledAt,
		MaxAttempts:       b.MaxAttempts,
		TemplateVariables: b.Variables,
	}
}

func (b *NotificationBuilder) BuildView() *queries.NotificationView {
	return &queries.NotificationView{
		ID:             uuid.New(),
		TenantID:       b.TenantID,
		RecipientID:    b.RecipientID,
		RecipientEmail: b.RecipientEmail,
		RecipientName:  b.RecipientName,
		Channel:        b.Channel.String(),
		Priority:       b.Priority.String(),
		Status:         domnotif.StatusPending.String(),
		EventType:      b.EventType,
		Subject:        b.Subject,
		Body:           b.Body,
		Destination:    b.Destination,
		MaxAttempts:    domnotif.DefaultMaxAttempts,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

func (b *NotificationBuilder) BuildListItem() *queries.NotificationListItem {
	return &queries.NotificationListItem{
		ID:             uuid.New(),
		RecipientID:    b.RecipientID,
		RecipientEmail: b.RecipientEmail,
		Channel:        b.Channel.String(),
		Priority:       b.Priority.String(),
		Status:         domnotif.StatusSent.String(),
		EventType:      b.EventType,
		Subject:        b.Subject,
		CreatedAt:      b.Now,
	}
}
