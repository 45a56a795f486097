package template

import (
	"errors"
	"strings"
	"time"

	"support-notify/internal/domain/notification"

	"github.com/google/uuid"
)

var (
	ErrMissingName     = errors.New("template name is required")
	ErrMissingBody     = errors.New("template body is required")
	ErrMissingSubject  = errors.New("template subject is required for this channel")
	ErrInvalidLanguage = errors.New("invalid template language code")
)

const DefaultLanguage = "en"

// Template is a named, versioned content blueprint. Unique per (tenant, name);
// at most one template may be the default for a (tenant, eventType, channel)
// tuple, which the write path enforces by clearing prior defaults.
type Template struct {
	ID          uuid.UUID
	TenantID    string
	Name        string
	DisplayName string
	Description string
	Channel     notification.Channel
	EventType   string
	Subject     string
	Body        string
	HTMLBody    *string
	Language    string
	IsActive    bool
	IsDefault   bool
	Version     int32
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func New(tenantID, name string, channel notification.Channel, eventType, subject, body string, htmlBody *string, language string, now time.Time) (*Template, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}
	if !channel.IsValid() {
		return nil, notification.ErrInvalidChannel
	}
	if language == "" {
		language = DefaultLanguage
	}
	if len(language) > 10 {
		return nil, ErrInvalidLanguage
	}

	t := &Template{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Name:      strings.TrimSpace(name),
		Channel:   channel,
		EventType: eventType,
		Subject:   subject,
		Body:      body,
		HTMLBody:  htmlBody,
		Language:  language,
		IsActive:  true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.ValidateComplete(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Template) HasSubject() bool {
	return strings.TrimSpace(t.Subject) != ""
}

func (t *Template) HasBody() bool {
	return strings.TrimSpace(t.Body) != ""
}

// ValidateComplete checks the template carries everything its channel needs:
// a body always, and a subject for email and push.
func (t *Template) ValidateComplete() error {
	if !t.HasBody() {
		return ErrMissingBody
	}
	if t.Channel.RequiresSubject() && !t.HasSubject() {
		return ErrMissingSubject
	}
	return nil
}

func (t *Template) IsComplete() bool {
	return t.ValidateComplete() == nil
}

func (t *Template) SupportsHTML() bool {
	return t.Channel == notification.ChannelEmail && t.HTMLBody != nil && strings.TrimSpace(*t.HTMLBody) != ""
}

// UpdateContent replaces the rendered content and bumps the version.
func (t *Template) UpdateContent(subject, body string, htmlBody *string, now time.Time) error {
	prevSubject, prevBody, prevHTML := t.Subject, t.Body, t.HTMLBody
	t.Subject = subject
	t.Body = body
	t.HTMLBody = htmlBody
	if err := t.ValidateComplete(); err != nil {
		t.Subject, t.Body, t.HTMLBody = prevSubject, prevBody, prevHTML
		return err
	}
	t.Version++
	t.UpdatedAt = now
	return nil
}

func (t *Template) Activate(now time.Time) {
	t.IsActive = true
	t.UpdatedAt = now
}

func (t *Template) Deactivate(now time.Time) {
	t.IsActive = false
	t.UpdatedAt = now
}

func (t *Template) SetDefault(now time.Time) {
	t.IsDefault = true
	t.UpdatedAt = now
}

func (t *Template) ClearDefault(now time.Time) {
	t.IsDefault = false
	t.UpdatedAt = now
}

func (t *Template) DisplayNameOrName() string {
	if strings.TrimSpace(t.DisplayName) != "" {
		return t.DisplayName
	}
	return t.Name
}
