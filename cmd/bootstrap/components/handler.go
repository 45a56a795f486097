package components

import (
	"support-notify/internal/handler"
	"support-notify/internal/handler/api"
	"support-notify/internal/handler/middleware"
	"support-notify/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNotificationHandler,
		api.NewFeedbackHandler,
		api.NewTemplateHandler,
		api.NewStatsHandler,
		NewCallbackAuth,
	),
	fx.Invoke(handler.NewRouter),
)

func NewCallbackAuth(cfg config.Config) *middleware.CallbackAuth {
	return middleware.NewCallbackAuth(cfg.Callback)
}
