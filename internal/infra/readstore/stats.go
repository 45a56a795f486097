package readstore

import (
	"context"
	"log/slog"
	"time"

	"support-notify/internal/infra"
	"support-notify/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statsReadStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStatsReadStore(pool *pgxpool.Pool, logger *slog.Logger) queries.StatsReadStore {
	return &statsReadStore{pool: pool, logger: logger}
}

func (s *statsReadStore) CountByStatus(ctx context.Context, tenantID string) ([]queries.StatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM notifications
		WHERE tenant_id = $1
		GROUP BY status`

	rows, err := s.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to count notifications by status", err)
	}
	defer rows.Close()

	var counts []queries.StatusCount
	for rows.Next() {
		var c queries.StatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, infra.WrapPgErr(s.logger, "failed to scan status count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to count notifications by status", err)
	}
	return counts, nil
}

func (s *statsReadStore) CountByChannel(ctx context.Context, tenantID string) ([]queries.ChannelCount, error) {
	query := `
		SELECT channel, COUNT(*)
		FROM notifications
		WHERE tenant_id = $1
		GROUP BY channel`

	rows, err := s.pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to count notifications by channel", err)
	}
	defer rows.Close()

	var counts []queries.ChannelCount
	for rows.Next() {
		var c queries.ChannelCount
		if err := rows.Scan(&c.Channel, &c.Count); err != nil {
			return nil, infra.WrapPgErr(s.logger, "failed to scan channel count", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to count notifications by channel", err)
	}
	return counts, nil
}

func (s *statsReadStore) DeliveryCounts(ctx context.Context, tenantID string, since time.Time) (*queries.DeliveryCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('sent', 'delivered', 'opened', 'clicked')),
			COUNT(*) FILTER (WHERE status IN ('failed', 'bounced', 'rejected')),
			COUNT(*)
		FROM notifications
		WHERE tenant_id = $1 AND created_at >= $2 AND status NOT IN ('pending', 'processing')`

	var c queries.DeliveryCounts
	if err := s.pool.QueryRow(ctx, query, tenantID, since).Scan(&c.Delivered, &c.Failed, &c.Total); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to aggregate delivery counts", err)
	}
	return &c, nil
}

func (s *statsReadStore) EngagementCounts(ctx context.Context, tenantID string, since time.Time) (*queries.EngagementCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE opened_at IS NOT NULL),
			COUNT(*) FILTER (WHERE clicked_at IS NOT NULL),
			COUNT(*) FILTER (WHERE delivered_at IS NOT NULL)
		FROM notifications
		WHERE tenant_id = $1 AND created_at >= $2`

	var c queries.EngagementCounts
	if err := s.pool.QueryRow(ctx, query, tenantID, since).Scan(&c.Opened, &c.Clicked, &c.Delivered); err != nil {
		return nil, infra.WrapPgErr(s.logger, "failed to aggregate engagement counts", err)
	}
	return &c, nil
}
