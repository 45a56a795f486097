package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"support-notify/internal/domain/notification"
	"support-notify/internal/pkg/clock"
	"support-notify/internal/pkg/config"
	"support-notify/internal/usecase/commands"
	"support-notify/internal/usecase/shared"

	"github.com/google/uuid"
)

// Scheduler drives batch delivery: every tick it walks active tenants,
// collects ready and retry-due records, and hands each to the dispatcher
// through a bounded worker pool. A separate slower ticker runs the expiry
// and retention sweeps.
type Scheduler struct {
	repo       shared.NotificationRepository
	tenants    shared.TenantDirectory
	dispatcher commands.NotificationCommands
	cfg        config.DeliveryConfig
	clock      clock.Clock
	logger     *slog.Logger

	wg            sync.WaitGroup
	batchInFlight atomic.Bool
}

func New(
	repo shared.NotificationRepository,
	tenants shared.TenantDirectory,
	dispatcher commands.NotificationCommands,
	cfg config.DeliveryConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		repo:       repo,
		tenants:    tenants,
		dispatcher: dispatcher,
		cfg:        cfg,
		clock:      clk,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled, then drains in-flight dispatches.
func (s *Scheduler) Run(ctx context.Context) error {
	batchTicker := time.NewTicker(s.cfg.BatchInterval)
	defer batchTicker.Stop()
	sweepTicker := time.NewTicker(s.cfg.SweepInterval)
	defer sweepTicker.Stop()

	s.logger.Info("delivery scheduler started",
		"batch_interval", s.cfg.BatchInterval,
		"batch_size", s.cfg.BatchSize,
		"workers", s.cfg.Workers,
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("delivery scheduler stopping, draining in-flight dispatches")
			s.wg.Wait()
			return ctx.Err()
		case <-batchTicker.C:
			// Cycles run off the loop so a slow send cannot delay the next
			// tick or the sweeps. A cycle still covering its batch is left
			// alone rather than doubled up.
			if !s.batchInFlight.CompareAndSwap(false, true) {
				continue
			}
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				defer s.batchInFlight.Store(false)
				s.RunBatch(ctx)
			}()
		case <-sweepTicker.C:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.RunSweep(ctx)
			}()
		}
	}
}

// RunBatch processes one delivery cycle across all active tenants. Tenants
// are walked sequentially so one noisy tenant cannot starve the pool, while
// dispatches within a tenant fan out over the workers.
func (s *Scheduler) RunBatch(ctx context.Context) {
	tenants, err := s.tenants.ActiveTenants(ctx)
	if err != nil {
		s.logger.Error("failed to list active tenants", "error", err)
		return
	}

	for _, tenantID := range tenants {
		if ctx.Err() != nil {
			return
		}
		s.processTenant(ctx, tenantID)
	}
}

func (s *Scheduler) processTenant(ctx context.Context, tenantID string) {
	now := s.clock.Now()

	ready, err := s.repo.FindReadyToSend(ctx, tenantID, now, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("failed to collect ready notifications", "tenant_id", tenantID, "error", err)
		return
	}
	retries, err := s.repo.FindReadyForRetry(ctx, tenantID, now, s.cfg.BatchSize)
	if err != nil {
		s.logger.Error("failed to collect retry notifications", "tenant_id", tenantID, "error", err)
		return
	}

	batch := append(ready, retries...)
	if len(batch) == 0 {
		return
	}

	s.logger.Info("dispatching batch",
		"tenant_id", tenantID,
		"ready", len(ready),
		"retries", len(retries),
	)

	sem := make(chan struct{}, s.cfg.Workers)
	for _, n := range batch {
		select {
		case <-ctx.Done():
			return
		case sem <- struct{}{}:
		}
		s.wg.Add(1)
		go func(id uuid.UUID) {
			defer s.wg.Done()
			defer func() { <-sem }()
			if err := s.dispatcher.Dispatch(ctx, tenantID, id); err != nil {
				s.logger.Error("dispatch failed", "tenant_id", tenantID, "notification_id", id, "error", err)
			}
		}(n.ID)
	}

	// Let the tenant's batch finish before moving on; interleaving tenants
	// would let a large tenant monopolize the workers indefinitely.
	for i := 0; i < cap(sem); i++ {
		select {
		case <-ctx.Done():
			return
		case sem <- struct{}{}:
		}
	}
}

// RunSweep force-expires stale scheduled records and purges terminal records
// past the retention window, per tenant.
func (s *Scheduler) RunSweep(ctx context.Context) {
	tenants, err := s.tenants.AllTenants(ctx)
	if err != nil {
		s.logger.Error("failed to list tenants for sweep", "error", err)
		return
	}

	now := s.clock.Now()
	expiryCutoff := now.Add(-notification.ExpiryAge)
	retentionCutoff := now.AddDate(0, 0, -s.cfg.RetentionDays)

	for _, tenantID := range tenants {
		if ctx.Err() != nil {
			return
		}

		expired, err := s.repo.MarkExpired(ctx, tenantID, expiryCutoff, now)
		if err != nil {
			s.logger.Error("expiry sweep failed", "tenant_id", tenantID, "error", err)
		} else if expired > 0 {
			s.logger.Info("expired stale notifications", "tenant_id", tenantID, "count", expired)
		}

		purged, err := s.repo.DeleteTerminalBefore(ctx, tenantID, retentionCutoff)
		if err != nil {
			s.logger.Error("retention sweep failed", "tenant_id", tenantID, "error", err)
		} else if purged > 0 {
			s.logger.Info("purged notifications past retention", "tenant_id", tenantID, "count", purged)
		}
	}
}
