package commands

import (
	"context"
	"log/slog"

	"support-notify/internal/domain/notification"
	"support-notify/internal/infra"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/usecase/shared"
)

type FeedbackRequest struct {
	ExternalID string
	Event      notification.FeedbackEvent
	Reason     string
}

// FeedbackCommands ingests delivery status callbacks from channel providers.
type FeedbackCommands interface {
	Apply(ctx context.Context, tenantID string, req FeedbackRequest) error
}

type feedbackUseCaseImpl struct {
	repo   shared.NotificationRepository
	cache  shared.NotificationCache
	clock  clock.Clock
	logger *slog.Logger
}

func NewFeedbackUseCase(
	repo shared.NotificationRepository,
	cache shared.NotificationCache,
	clk clock.Clock,
	logger *slog.Logger,
) FeedbackCommands {
	return &feedbackUseCaseImpl{repo: repo, cache: cache, clock: clk, logger: logger}
}

// Apply advances the record per the provider event. Unknown external ids are
// dropped silently: providers replay callbacks past our retention window.
func (uc *feedbackUseCaseImpl) Apply(ctx context.Context, tenantID string, req FeedbackRequest) error {
	n, err := uc.repo.FindByExternalID(ctx, tenantID, req.ExternalID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			uc.logger.Info("feedback for unknown external id dropped",
				"tenant_id", tenantID,
				"external_id", req.ExternalID,
				"event", req.Event,
			)
			return nil
		}
		return err
	}

	now := uc.clock.Now()

	switch req.Event {
	case notification.FeedbackDelivered:
		n.MarkDelivered(now)
	case notification.FeedbackOpened:
		n.MarkOpened(now)
	case notification.FeedbackClicked:
		n.MarkClicked(now)
	case notification.FeedbackBounced:
		n.MarkBounced(now, req.Reason)
	case notification.FeedbackFailed:
		n.MarkFeedbackFailed(now, req.Reason)
	default:
		return notification.ErrInvalidStatus
	}

	if err := uc.repo.Update(ctx, n); err != nil {
		return err
	}

	uc.logger.Info("delivery feedback applied",
		"notification_id", n.ID,
		"tenant_id", tenantID,
		"event", req.Event,
		"status", n.Status,
	)

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, tenantID, n.ID)
	}
	return nil
}
