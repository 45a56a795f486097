package components

import (
	"support-notify/internal/infra/channel"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"

	"go.uber.org/fx"
)

var ChannelModule = fx.Module("channel",
	fx.Provide(
		NewSenderRegistry,
	),
)

func NewSenderRegistry(cfg config.Config) commands.SenderRegistry {
	return commands.NewSenderRegistry(
		channel.NewEmailSender(cfg.SMTP),
		channel.NewPushSender(cfg.Provider),
		channel.NewSMSSender(cfg.Provider),
		channel.NewWebhookSender(cfg.Provider),
	)
}
