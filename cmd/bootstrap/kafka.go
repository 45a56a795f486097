package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"support-notify/internal/infra/kafka"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Invoke(StartConsumer),
)

// StartConsumer runs the platform event consumer when kafka intake is
// enabled. Disabled deployments receive work through the HTTP API only.
func StartConsumer(
	lc fx.Lifecycle,
	cfg config.Config,
	notifications commands.NotificationCommands,
	logger *slog.Logger,
) {
	if !cfg.Kafka.Enabled {
		logger.Info("kafka intake disabled")
		return
	}

	consumer := kafka.NewConsumer(cfg.Kafka, notifications, logger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("kafka consumer stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return consumer.Close()
		},
	})
}
