package commands

import (
	"context"

	"support-notify/internal/domain/notification"
	domtpl "support-notify/internal/domain/template"
	"support-notify/internal/infra"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/pkg/render"
	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	Name        string
	DisplayName string
	Description string
	Channel     notification.Channel
	EventType   string
	Subject     string
	Body        string
	HTMLBody    *string
	Language    string
	IsDefault   bool
}

type UpdateTemplateRequest struct {
	Subject  *string
	Body     *string
	HTMLBody *string
	IsActive *bool
}

type CreateTemplateResult struct {
	TemplateID uuid.UUID
}

type TemplateCommands interface {
	Create(ctx context.Context, tenantID string, req CreateTemplateRequest) (*CreateTemplateResult, error)
	Update(ctx context.Context, tenantID string, id uuid.UUID, req UpdateTemplateRequest) error
	SetDefault(ctx context.Context, tenantID string, id uuid.UUID) error
}

type templateUseCaseImpl struct {
	repo  shared.TemplateRepository
	clock clock.Clock
}

func NewTemplateUseCase(repo shared.TemplateRepository, clk clock.Clock) TemplateCommands {
	return &templateUseCaseImpl{repo: repo, clock: clk}
}

func (uc *templateUseCaseImpl) Create(ctx context.Context, tenantID string, req CreateTemplateRequest) (*CreateTemplateResult, error) {
	t, err := domtpl.New(tenantID, req.Name, req.Channel, req.EventType, req.Subject, req.Body, req.HTMLBody, req.Language, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	t.DisplayName = req.DisplayName
	t.Description = req.Description

	if err := uc.repo.Create(ctx, t); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.ErrDuplicateTemplate
		}
		return nil, err
	}

	if req.IsDefault {
		t.SetDefault(uc.clock.Now())
		if err := uc.repo.SetDefault(ctx, t); err != nil {
			return nil, err
		}
	}
	return &CreateTemplateResult{TemplateID: t.ID}, nil
}

func (uc *templateUseCaseImpl) Update(ctx context.Context, tenantID string, id uuid.UUID, req UpdateTemplateRequest) error {
	t, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTemplateNotFound
		}
		return err
	}

	now := uc.clock.Now()
	if req.Subject != nil || req.Body != nil || req.HTMLBody != nil {
		subject, body, htmlBody := t.Subject, t.Body, t.HTMLBody
		if req.Subject != nil {
			subject = *req.Subject
		}
		if req.Body != nil {
			body = *req.Body
		}
		if req.HTMLBody != nil {
			htmlBody = req.HTMLBody
		}
		if err := t.UpdateContent(subject, body, htmlBody, now); err != nil {
			return err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			t.Activate(now)
		} else {
			t.Deactivate(now)
		}
	}
	return uc.repo.Update(ctx, t)
}

func (uc *templateUseCaseImpl) SetDefault(ctx context.Context, tenantID string, id uuid.UUID) error {
	t, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrTemplateNotFound
		}
		return err
	}
	t.SetDefault(uc.clock.Now())
	return uc.repo.SetDefault(ctx, t)
}

// templateResolverImpl resolves templates from the store and renders them
// with simple named-placeholder substitution.
type templateResolverImpl struct {
	repo shared.TemplateRepository
}

func NewTemplateResolver(repo shared.TemplateRepository) TemplateResolver {
	return &templateResolverImpl{repo: repo}
}

func (r *templateResolverImpl) Resolve(ctx context.Context, tenantID, eventType string, channel notification.Channel, language string) (*domtpl.Template, error) {
	if language == "" {
		language = domtpl.DefaultLanguage
	}
	t, err := r.repo.FindDefault(ctx, tenantID, eventType, channel, language)
	if err == nil {
		return t, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	if language == domtpl.DefaultLanguage {
		return nil, nil
	}
	// fall back to the tenant base language
	t, err = r.repo.FindDefault(ctx, tenantID, eventType, channel, domtpl.DefaultLanguage)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *templateResolverImpl) Render(t *domtpl.Template, vars map[string]string) RenderedContent {
	content := RenderedContent{
		Subject: render.Substitute(t.Subject, vars),
		Body:    render.Substitute(t.Body, vars),
	}
	if t.HTMLBody != nil {
		html := render.Substitute(*t.HTMLBody, vars)
		content.HTMLBody = &html
	}
	return content
}
