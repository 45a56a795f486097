package bootstrap

import (
	"context"
	"log/slog"

	"support-notify/internal/pkg/clock"
	"support-notify/internal/pkg/config"
	"support-notify/internal/scheduler"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(NewScheduler),
	fx.Invoke(StartScheduler),
)

func NewScheduler(
	repo shared.NotificationRepository,
	tenants shared.TenantDirectory,
	dispatcher commands.NotificationCommands,
	cfg config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) *scheduler.Scheduler {
	return scheduler.New(repo, tenants, dispatcher, cfg.Delivery, clk, logger)
}

func StartScheduler(lc fx.Lifecycle, s *scheduler.Scheduler, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := s.Run(ctx); err != nil && err != context.Canceled {
					logger.Error("scheduler stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}
