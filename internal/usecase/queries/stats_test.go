//go:build unit

package queries_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"support-notify/internal/pkg/clock"
	"support-notify/internal/usecase/queries"
	queriesmock "support-notify/tests/mock/queries"
	sharedmock "support-notify/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsQueriesGet(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*queriesmock.MockStatsReadStore, *sharedmock.MockNotificationCache, queries.StatsQueries) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockStatsReadStore(ctrl)
		cache := sharedmock.NewMockNotificationCache(ctrl)
		return store, cache, queries.NewStatsQueries(store, cache, clock.NewMockClock(now))
	}

	t.Run("assembles the snapshot on a cache miss", func(t *testing.T) {
		store, cache, q := setup(t)
		since := now.Add(-queries.StatsWindow)

		cache.EXPECT().GetStats(gomock.Any(), "acme").Return(nil, false)
		store.EXPECT().CountByStatus(gomock.Any(), "acme").Return([]queries.StatusCount{
			{Status: "pending", Count: 5},
			{Status: "sent", Count: 10},
			{Status: "delivered", Count: 20},
			{Status: "opened", Count: 8},
			{Status: "failed", Count: 3},
			{Status: "rejected", Count: 1},
		}, nil)
		store.EXPECT().CountByChannel(gomock.Any(), "acme").Return([]queries.ChannelCount{
			{Channel: "email", Count: 40},
			{Channel: "sms", Count: 7},
		}, nil)
		store.EXPECT().DeliveryCounts(gomock.Any(), "acme", since).Return(&queries.DeliveryCounts{
			Delivered: 38,
			Failed:    4,
			Total:     42,
		}, nil)
		store.EXPECT().EngagementCounts(gomock.Any(), "acme", since).Return(&queries.EngagementCounts{
			Opened:    8,
			Clicked:   2,
			Delivered: 38,
		}, nil)
		cache.EXPECT().SetStats(gomock.Any(), "acme", gomock.Any())

		view, err := q.Get(ctx, "acme")
		require.NoError(t, err)

		assert.Equal(t, int64(47), view.Total)
		assert.Equal(t, int64(5), view.Pending)
		assert.Equal(t, int64(38), view.Sent, "sent family includes delivered and opened")
		assert.Equal(t, int64(4), view.Failed)
		assert.InDelta(t, 38.0/42.0, view.DeliveryRate, 1e-9)
		assert.InDelta(t, 8.0/38.0, view.EngagementRate, 1e-9)
		assert.Equal(t, since, view.WindowStart)
		assert.Equal(t, now, view.GeneratedAt)
	})

	t.Run("serves a cached snapshot without hitting the store", func(t *testing.T) {
		_, cache, q := setup(t)

		cached := &queries.StatsView{TenantID: "acme", Total: 99}
		payload, err := json.Marshal(cached)
		require.NoError(t, err)
		cache.EXPECT().GetStats(gomock.Any(), "acme").Return(payload, true)

		view, err := q.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(99), view.Total)
	})

	t.Run("unreadable cache entry falls through to the store", func(t *testing.T) {
		store, cache, q := setup(t)

		cache.EXPECT().GetStats(gomock.Any(), "acme").Return([]byte("{corrupt"), true)
		store.EXPECT().CountByStatus(gomock.Any(), "acme").Return(nil, nil)
		store.EXPECT().CountByChannel(gomock.Any(), "acme").Return(nil, nil)
		store.EXPECT().DeliveryCounts(gomock.Any(), "acme", gomock.Any()).Return(&queries.DeliveryCounts{}, nil)
		store.EXPECT().EngagementCounts(gomock.Any(), "acme", gomock.Any()).Return(&queries.EngagementCounts{}, nil)
		cache.EXPECT().SetStats(gomock.Any(), "acme", gomock.Any())

		view, err := q.Get(ctx, "acme")
		require.NoError(t, err)
		assert.Equal(t, int64(0), view.Total)
		assert.Zero(t, view.DeliveryRate, "no division by zero on empty windows")
	})

	t.Run("store failure propagates", func(t *testing.T) {
		store, cache, q := setup(t)

		cache.EXPECT().GetStats(gomock.Any(), "acme").Return(nil, false)
		store.EXPECT().CountByStatus(gomock.Any(), "acme").Return(nil, notFoundErr())

		_, err := q.Get(ctx, "acme")
		require.Error(t, err)
	})
}
