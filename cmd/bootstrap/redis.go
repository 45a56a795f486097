package bootstrap

import (
	"context"
	"log/slog"

	"support-notify/internal/infra/cache"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewStatsCache,
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}

func NewStatsCache(client *redis.Client, cfg config.Config, logger *slog.Logger) shared.NotificationCache {
	return cache.NewStatsCache(client, cfg.Redis.CacheTTL, logger)
}
