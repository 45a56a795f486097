package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// statsCache keeps per-tenant stats snapshots in redis with a short TTL.
// Failures degrade to a cache miss; the store is always the source of truth.
type statsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewStatsCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) shared.NotificationCache {
	return &statsCache{client: client, ttl: ttl, logger: logger}
}

func (c *statsCache) statsKey(tenantID string) string {
	return fmt.Sprintf("notify:stats:%s", tenantID)
}

func (c *statsCache) GetStats(ctx context.Context, tenantID string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, c.statsKey(tenantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("stats cache read failed", "tenant_id", tenantID, "error", err)
		}
		return nil, false
	}
	return payload, true
}

func (c *statsCache) SetStats(ctx context.Context, tenantID string, payload []byte) {
	if err := c.client.Set(ctx, c.statsKey(tenantID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("stats cache write failed", "tenant_id", tenantID, "error", err)
	}
}

// Invalidate drops the tenant's stats snapshot after any record mutation so
// the next stats read recomputes.
func (c *statsCache) Invalidate(ctx context.Context, tenantID string, _ uuid.UUID) {
	if err := c.client.Del(ctx, c.statsKey(tenantID)).Err(); err != nil {
		c.logger.Warn("stats cache invalidation failed", "tenant_id", tenantID, "error", err)
	}
}

// NoopCache satisfies the cache port when redis is not configured.
type NoopCache struct{}

func (NoopCache) GetStats(context.Context, string) ([]byte, bool) { return nil, false }
func (NoopCache) SetStats(context.Context, string, []byte)        {}
func (NoopCache) Invalidate(context.Context, string, uuid.UUID)   {}
