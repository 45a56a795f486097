package bootstrap

import (
	"support-notify/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.ChannelModule,
	components.HandlerModule,
	SchedulerModule,
	KafkaModule,
)
