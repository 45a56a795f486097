package commands

import (
	"context"
	"log/slog"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/domain/template"
	"support-notify/internal/infra"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/pkg/errs"
	"support-notify/internal/pkg/render"
	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateNotificationRequest struct {
	RecipientID    uuid.UUID
	RecipientEmail string
	RecipientName  string
	Channel        notification.Channel
	Priority       notification.Priority
	EventType      string
	EventID        *uuid.UUID
	TemplateID     *uuid.UUID
	TemplateName   *string
	Subject        string
	Body           string
	HTMLBody       *string
	Destination    string
	Sender         *string
	Language       string
	ScheduledAt    *time.Time
	MaxAttempts    *int32

	Metadata          map[string]string
	TemplateVariables map[string]string
	DeliveryConfig    map[string]string
	Tags              []string
}

type CreateNotificationResult struct {
	NotificationID uuid.UUID
	Ready          bool
}

type NotificationCommands interface {
	Create(ctx context.Context, tenantID string, req CreateNotificationRequest) (*CreateNotificationResult, error)
	// Dispatch performs at most one physical send attempt for the record.
	// Non-ready records and lost claim races are no-ops, not errors.
	Dispatch(ctx context.Context, tenantID string, id uuid.UUID) error
	Cancel(ctx context.Context, tenantID string, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	repo     shared.NotificationRepository
	tplRepo  shared.TemplateRepository
	resolver TemplateResolver
	senders  SenderRegistry
	cache    shared.NotificationCache
	clock    clock.Clock
	logger   *slog.Logger
}

func NewNotificationUseCase(
	repo shared.NotificationRepository,
	tplRepo shared.TemplateRepository,
	resolver TemplateResolver,
	senders SenderRegistry,
	cache shared.NotificationCache,
	clk clock.Clock,
	logger *slog.Logger,
) NotificationCommands {
	return &notificationUseCaseImpl{
		repo:     repo,
		tplRepo:  tplRepo,
		resolver: resolver,
		senders:  senders,
		cache:    cache,
		clock:    clk,
		logger:   logger,
	}
}

func (uc *notificationUseCaseImpl) Create(ctx context.Context, tenantID string, req CreateNotificationRequest) (*CreateNotificationResult, error) {
	now := uc.clock.Now()

	n, err := notification.New(notification.NewSpec{
		TenantID:          tenantID,
		RecipientID:       req.RecipientID,
		RecipientEmail:    req.RecipientEmail,
		RecipientName:     req.RecipientName,
		Channel:           req.Channel,
		Priority:          req.Priority,
		EventType:         req.EventType,
		EventID:           req.EventID,
		Subject:           req.Subject,
		Body:              req.Body,
		HTMLBody:          req.HTMLBody,
		Destination:       req.Destination,
		Sender:            req.Sender,
		ScheduledAt:       req.ScheduledAt,
		MaxAttempts:       req.MaxAttempts,
		Metadata:          req.Metadata,
		TemplateVariables: req.TemplateVariables,
		DeliveryConfig:    req.DeliveryConfig,
		Tags:              req.Tags,
	}, now)
	if err != nil {
		return nil, err
	}

	if tpl, terr := uc.lookupTemplate(ctx, tenantID, req); terr != nil {
		return nil, terr
	} else if tpl != nil {
		content := uc.resolver.Render(tpl, req.TemplateVariables)
		n.ApplyTemplate(tpl.ID, tpl.Name, content.Subject, content.Body, content.HTMLBody)
	}

	if n.Body == "" {
		return nil, notification.ErrMissingContent
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	uc.logger.Info("notification created",
		"notification_id", n.ID,
		"tenant_id", tenantID,
		"channel", n.Channel,
		"recipient_id", n.RecipientID,
	)

	result := &CreateNotificationResult{
		NotificationID: n.ID,
		Ready:          n.IsReadyToSend(now),
	}

	if result.Ready {
		// First attempt fires right away instead of waiting for the next
		// batch tick. Losing the processing claim to a concurrent batch is
		// a no-op, so the two paths cannot double-send.
		go func(ctx context.Context) {
			if err := uc.Dispatch(ctx, tenantID, n.ID); err != nil {
				uc.logger.Error("immediate dispatch failed",
					"notification_id", n.ID,
					"tenant_id", tenantID,
					"error", err,
				)
			}
		}(context.WithoutCancel(ctx))
	}

	return result, nil
}

// lookupTemplate follows the caller's template reference: explicit id first,
// then name, then the default for the event type.
func (uc *notificationUseCaseImpl) lookupTemplate(ctx context.Context, tenantID string, req CreateNotificationRequest) (*template.Template, error) {
	switch {
	case req.TemplateID != nil:
		t, err := uc.tplRepo.FindByID(ctx, tenantID, *req.TemplateID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrTemplateNotFound
			}
			return nil, err
		}
		return t, nil
	case req.TemplateName != nil:
		t, err := uc.tplRepo.FindByName(ctx, tenantID, *req.TemplateName)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrTemplateNotFound
			}
			return nil, err
		}
		return t, nil
	case req.EventType != "":
		return uc.resolver.Resolve(ctx, tenantID, req.EventType, req.Channel, req.Language)
	default:
		return nil, nil
	}
}

func (uc *notificationUseCaseImpl) Dispatch(ctx context.Context, tenantID string, id uuid.UUID) error {
	now := uc.clock.Now()

	n, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrNotificationNotFound
		}
		return err
	}

	if !n.IsReadyToSend(now) {
		uc.logger.Info("skipping dispatch, notification not ready",
			"notification_id", id,
			"tenant_id", tenantID,
			"status", n.Status,
			"scheduled_at", n.ScheduledAt,
		)
		return nil
	}

	// Atomic claim: exactly one worker wins the PENDING -> PROCESSING race.
	claimed, err := uc.repo.ClaimForProcessing(ctx, tenantID, id, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.logger.Info("dispatch lost claim race", "notification_id", id, "tenant_id", tenantID)
			return nil
		}
		return err
	}

	uc.renderForDispatch(ctx, claimed)

	sender, ok := uc.senders[claimed.Channel]
	if !ok {
		return uc.finishFailed(ctx, claimed, errs.ErrUnsupportedChannel.Error(), true)
	}

	result, sendErr := sender.Send(ctx, claimed)
	if sendErr != nil {
		uc.logger.Warn("channel send failed",
			"notification_id", id,
			"tenant_id", tenantID,
			"channel", claimed.Channel,
			"attempt", claimed.AttemptCount,
			"permanent", IsPermanent(sendErr),
			"error", sendErr,
		)
		return uc.finishFailed(ctx, claimed, sendErr.Error(), IsPermanent(sendErr))
	}

	sentAt := uc.clock.Now()
	if err := claimed.MarkSent(sentAt, result.ExternalID, result.ProviderResponse); err != nil {
		return err
	}
	return uc.persistOutcome(ctx, claimed)
}

// renderForDispatch refreshes content from the linked template so a dispatch
// always sends the template's current version. Resolution failures fall back
// to the content stored on the record.
func (uc *notificationUseCaseImpl) renderForDispatch(ctx context.Context, n *notification.Notification) {
	if n.TemplateID == nil {
		n.Subject = render.Substitute(n.Subject, n.TemplateVariables)
		n.Body = render.Substitute(n.Body, n.TemplateVariables)
		return
	}
	t, err := uc.tplRepo.FindByID(ctx, n.TenantID, *n.TemplateID)
	if err != nil {
		uc.logger.Warn("linked template unavailable, using stored content",
			"notification_id", n.ID, "template_id", *n.TemplateID, "error", err)
		return
	}
	content := uc.resolver.Render(t, n.TemplateVariables)
	n.Subject = content.Subject
	n.Body = content.Body
	n.HTMLBody = content.HTMLBody
}

func (uc *notificationUseCaseImpl) finishFailed(ctx context.Context, n *notification.Notification, errMsg string, permanent bool) error {
	if err := n.MarkFailed(uc.clock.Now(), errMsg, permanent); err != nil {
		return err
	}
	return uc.persistOutcome(ctx, n)
}

// persistOutcome writes the post-send state, guarded on the row still being
// PROCESSING. When the guard fails the record was cancelled mid-flight: the
// attempt result is attached without reviving the record.
func (uc *notificationUseCaseImpl) persistOutcome(ctx context.Context, n *notification.Notification) error {
	updated, err := uc.repo.UpdateFromProcessing(ctx, n)
	if err != nil {
		return err
	}
	if !updated {
		uc.logger.Info("record left processing mid-flight, recording late result",
			"notification_id", n.ID, "tenant_id", n.TenantID)
		return uc.repo.RecordLateResult(ctx, n.TenantID, n.ID, n.ExternalID, n.ProviderResponse, n.LastError, uc.clock.Now())
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, n.TenantID, n.ID)
	}
	return nil
}

func (uc *notificationUseCaseImpl) Cancel(ctx context.Context, tenantID string, id uuid.UUID) error {
	n, err := uc.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrNotificationNotFound
		}
		return err
	}
	if err := n.Cancel(uc.clock.Now()); err != nil {
		return err
	}
	if err := uc.repo.Update(ctx, n); err != nil {
		return err
	}
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, tenantID, id)
	}
	uc.logger.Info("notification cancelled", "notification_id", id, "tenant_id", tenantID)
	return nil
}
