package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultMaxAttempts applies when the caller does not pick a value.
	DefaultMaxAttempts int32 = 3
	// MaxAttemptsCap bounds caller-supplied maxAttempts.
	MaxAttemptsCap int32 = 10
	// ExpiryAge is how long a still-pending scheduled record may sit past its
	// scheduled time before the expiry sweep force-expires it.
	ExpiryAge = 24 * time.Hour
)

// Notification is one outbound message instance. Fields are exported because
// the record is persisted and scanned as-is; all state mutation goes through
// the transition methods in transitions.go.
type Notification struct {
	ID       uuid.UUID
	TenantID string

	RecipientID    uuid.UUID
	RecipientEmail string
	RecipientName  string

	Channel  Channel
	Priority Priority
	Status   Status

	EventType string
	EventID   *uuid.UUID

	TemplateID   *uuid.UUID
	TemplateName *string

	Subject  string
	Body     string
	HTMLBody *string

	Destination string
	Sender      *string

	ScheduledAt *time.Time
	SentAt      *time.Time
	DeliveredAt *time.Time
	OpenedAt    *time.Time
	ClickedAt   *time.Time

	AttemptCount int32
	MaxAttempts  int32
	NextRetryAt  *time.Time

	ExternalID       *string
	ProviderResponse *string
	LastError        *string

	Metadata          map[string]string
	TemplateVariables map[string]string
	DeliveryConfig    map[string]string
	Tags              []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSpec carries caller input for a new notification. Content may come from
// a template reference (TemplateID/TemplateName/EventType) or be supplied
// literally via Subject/Body.
type NewSpec struct {
	TenantID       string
	RecipientID    uuid.UUID
	RecipientEmail string
	RecipientName  string
	Channel        Channel
	Priority       Priority
	EventType      string
	EventID        *uuid.UUID
	Subject        string
	Body           string
	HTMLBody       *string
	Destination    string
	Sender         *string
	ScheduledAt    *time.Time
	MaxAttempts    *int32

	Metadata          map[string]string
	TemplateVariables map[string]string
	DeliveryConfig    map[string]string
	Tags              []string
}

func New(spec NewSpec, now time.Time) (*Notification, error) {
	if spec.TenantID == "" {
		return nil, ErrMissingRecipient
	}
	if spec.RecipientID == uuid.Nil {
		return nil, ErrMissingRecipient
	}
	if !spec.Channel.IsValid() {
		return nil, ErrInvalidChannel
	}
	if spec.Destination == "" {
		return nil, ErrMissingDestination
	}
	if spec.Body == "" && spec.EventType == "" {
		return nil, ErrMissingContent
	}

	priority := spec.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}

	maxAttempts := DefaultMaxAttempts
	if spec.MaxAttempts != nil {
		if *spec.MaxAttempts < 1 || *spec.MaxAttempts > MaxAttemptsCap {
			return nil, ErrInvalidMaxAttempts
		}
		maxAttempts = *spec.MaxAttempts
	}

	return &Notification{
		ID:                uuid.New(),
		TenantID:          spec.TenantID,
		RecipientID:       spec.RecipientID,
		RecipientEmail:    spec.RecipientEmail,
		RecipientName:     spec.RecipientName,
		Channel:           spec.Channel,
		Priority:          priority,
		Status:            StatusPending,
		EventType:         spec.EventType,
		EventID:           spec.EventID,
		Subject:           spec.Subject,
		Body:              spec.Body,
		HTMLBody:          spec.HTMLBody,
		Destination:       spec.Destination,
		Sender:            spec.Sender,
		ScheduledAt:       spec.ScheduledAt,
		MaxAttempts:       maxAttempts,
		Metadata:          spec.Metadata,
		TemplateVariables: spec.TemplateVariables,
		DeliveryConfig:    spec.DeliveryConfig,
		Tags:              spec.Tags,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ApplyTemplate links a resolved template and stores its rendered content.
func (n *Notification) ApplyTemplate(templateID uuid.UUID, templateName, subject, body string, htmlBody *string) {
	id := templateID
	name := templateName
	n.TemplateID = &id
	n.TemplateName = &name
	n.Subject = subject
	n.Body = body
	n.HTMLBody = htmlBody
}

func (n *Notification) IsPending() bool    { return n.Status == StatusPending }
func (n *Notification) IsProcessing() bool { return n.Status == StatusProcessing }

func (n *Notification) IsSent() bool {
	return n.Status == StatusSent || n.Status == StatusDelivered ||
		n.Status == StatusOpened || n.Status == StatusClicked
}

func (n *Notification) IsFailed() bool {
	return n.Status == StatusFailed || n.Status == StatusBounced || n.Status == StatusRejected
}

func (n *Notification) IsTerminal() bool {
	for _, s := range TerminalStatuses {
		if n.Status == s {
			return true
		}
	}
	return false
}

func (n *Notification) IsScheduled(now time.Time) bool {
	return n.ScheduledAt != nil && n.ScheduledAt.After(now)
}

func (n *Notification) IsReadyToSend(now time.Time) bool {
	return n.IsPending() && (n.ScheduledAt == nil || !n.ScheduledAt.After(now))
}

func (n *Notification) CanRetry() bool {
	return n.Status == StatusFailed && n.AttemptCount < n.MaxAttempts
}

func (n *Notification) IsExpired(now time.Time) bool {
	if n.ScheduledAt == nil || !n.IsPending() {
		return false
	}
	return n.ScheduledAt.Before(now.Add(-ExpiryAge))
}

func (n *Notification) IsHighPriority() bool {
	return n.Priority.Weight() >= PriorityHigh.Weight()
}
