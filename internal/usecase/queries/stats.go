package queries

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"support-notify/internal/pkg/clock"
	"support-notify/internal/usecase/shared"
)

// StatsWindow is the trailing window for rate aggregations.
const StatsWindow = 30 * 24 * time.Hour

// StatsReadStore aggregates over the notification record store.
type StatsReadStore interface {
	CountByStatus(ctx context.Context, tenantID string) ([]StatusCount, error)
	CountByChannel(ctx context.Context, tenantID string) ([]ChannelCount, error)
	DeliveryCounts(ctx context.Context, tenantID string, since time.Time) (*DeliveryCounts, error)
	EngagementCounts(ctx context.Context, tenantID string, since time.Time) (*EngagementCounts, error)
}

type StatsQueries interface {
	Get(ctx context.Context, tenantID string) (*StatsView, error)
}

type statsQueriesImpl struct {
	store StatsReadStore
	cache shared.NotificationCache
	clock clock.Clock
}

func NewStatsQueries(store StatsReadStore, cache shared.NotificationCache, clk clock.Clock) StatsQueries {
	return &statsQueriesImpl{store: store, cache: cache, clock: clk}
}

// Get assembles the stats snapshot, serving from cache when available. Stats
// are informational; a stale cache entry within its TTL is acceptable.
func (q *statsQueriesImpl) Get(ctx context.Context, tenantID string) (*StatsView, error) {
	if q.cache != nil {
		if payload, ok := q.cache.GetStats(ctx, tenantID); ok {
			var view StatsView
			if err := json.Unmarshal(payload, &view); err == nil {
				return &view, nil
			}
			slog.Warn("discarding unreadable cached stats", "tenant_id", tenantID)
		}
	}

	now := q.clock.Now()
	since := now.Add(-StatsWindow)

	byStatus, err := q.store.CountByStatus(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	byChannel, err := q.store.CountByChannel(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	delivery, err := q.store.DeliveryCounts(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}
	engagement, err := q.store.EngagementCounts(ctx, tenantID, since)
	if err != nil {
		return nil, err
	}

	view := &StatsView{
		TenantID:    tenantID,
		ByStatus:    byStatus,
		ByChannel:   byChannel,
		WindowStart: since,
		GeneratedAt: now,
	}
	for _, sc := range byStatus {
		view.Total += sc.Count
		switch sc.Status {
		case "pending":
			view.Pending += sc.Count
		case "sent", "delivered", "opened", "clicked":
			view.Sent += sc.Count
		case "failed", "bounced", "rejected":
			view.Failed += sc.Count
		}
	}
	if delivery.Total > 0 {
		view.DeliveryRate = float64(delivery.Delivered) / float64(delivery.Total)
	}
	if engagement.Delivered > 0 {
		view.EngagementRate = float64(engagement.Opened) / float64(engagement.Delivered)
	}

	if q.cache != nil {
		if payload, err := json.Marshal(view); err == nil {
			q.cache.SetStats(ctx, tenantID, payload)
		}
	}
	return view, nil
}
