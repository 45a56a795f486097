package components

import (
	"support-notify/internal/infra/readstore"
	"support-notify/internal/infra/repository"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		readstore.NewNotificationReadStore,
		readstore.NewTemplateReadStore,
		readstore.NewStatsReadStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		repository.NewNotificationRepository,
		repository.NewTemplateRepository,
		repository.NewTenantDirectory,
	),
)
