//go:build unit

package builder

import (
	"time"

	domnotif "support-notify/internal/domain/notification"
	domtpl "support-notify/internal/domain/template"
	reqdto "support-notify/internal/handler/dto/request"
	"support-notify/internal/usecase/queries"

	"github.com/google/uuid"
)

type TemplateBuilder struct {
	TenantID  string
	Name      string
	Channel   domnotif.Channel
	EventType string
	Subject   string
	Body      string
	HTMLBody  *string
	Language  string
	Now       time.Time
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		TenantID:  "acme",
		Name:      "ticket-created-email",
		Channel:   domnotif.ChannelEmail,
		EventType: "ticket.created",
		Subject:   "Ticket {{ticket_id}} created",
		Body:      "Hello {{name}}, ticket {{ticket_id}} is open.",
		Language:  "en",
		Now:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *TemplateBuilder) With(mutate func(*TemplateBuilder)) *TemplateBuilder {
	mutate(b)
	return b
}

func (b *TemplateBuilder) BuildDomain() (*domtpl.Template, error) {
	return domtpl.New(b.TenantID, b.Name, b.Channel, b.EventType, b.Subject, b.Body, b.HTMLBody, b.Language, b.Now)
}

func (b *TemplateBuilder) MustBuildDomain() *domtpl.Template {
	t, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return t
}

func (b *TemplateBuilder) BuildCreateRequestDTO() reqdto.CreateTemplateRequest {
	return reqdto.CreateTemplateRequest{
		Name:      b.Name,
		Channel:   b.Channel.String(),
		EventType: b.EventType,
		Subject:   b.Subject,
		Body:      b.Body,
		HTMLBody:  b.HTMLBody,
		Language:  b.Language,
	}
}

func (b *TemplateBuilder) BuildView() *queries.TemplateView {
	return &queries.TemplateView{
		ID:        uuid.New(),
		TenantID:  b.TenantID,
		Name:      b.Name,
		Channel:   b.Channel.String(),
		EventType: b.EventType,
		Subject:   b.Subject,
		Body:      b.Body,
		HTMLBody:  b.HTMLBody,
		Language:  b.Language,
		IsActive:  true,
		Version:   1,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
