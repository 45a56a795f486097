package components

import (
	"support-notify/internal/pkg/clock"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	commands.NewTemplateResolver,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNotificationUseCase,
		commands.NewFeedbackUseCase,
		commands.NewTemplateUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewNotificationQueries,
		queries.NewTemplateQueries,
		queries.NewStatsQueries,
	),
)
