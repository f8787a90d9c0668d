// Package scheduler runs the periodic ledger maintenance: the stale
// session sweep, the orphan backfill, and the reconciliation pass.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"

	"github.com/arxlab/arxpoints/internal/service/reconcileservice"
	"github.com/arxlab/arxpoints/internal/service/sweepservice"
)

type Sweeper interface {
	SweepStale(ctx context.Context, batchSize int, dryRun bool) (*sweepservice.Result, error)
	BackfillOrphans(ctx context.Context, batchSize int, dryRun bool) (*sweepservice.Result, error)
}

type Reconciler interface {
	ReconcileBatch(ctx context.Context, batchSize, offset int, dryRun bool) (*reconcileservice.BatchResult, error)
}

type Config struct {
	SweepInterval     time.Duration
	ReconcileInterval time.Duration
	BatchSize         int
}

type Scheduler struct {
	sched      gocron.Scheduler
	sweeper    Sweeper
	reconciler Reconciler
	cfg        Config
}

func New(sweeper Sweeper, reconciler Reconciler, cfg Config) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = sweepservice.DefaultBatchSize
	}
	return &Scheduler{
		sched:      sched,
		sweeper:    sweeper,
		reconciler: reconciler,
		cfg:        cfg,
	}, nil
}

// Start registers the three maintenance jobs. Each runs in singleton mode:
// a tick firing while the previous run is still going is rescheduled, so a
// slow full-table reconcile never overlaps itself.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.sched.NewJob(
		gocron.DurationJob(s.cfg.SweepInterval),
		gocron.NewTask(func() { s.runSweep(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = s.sched.NewJob(
		gocron.DurationJob(s.cfg.SweepInterval),
		gocron.NewTask(func() { s.runBackfill(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	_, err = s.sched.NewJob(
		gocron.DurationJob(s.cfg.ReconcileInterval),
		gocron.NewTask(func() { s.runReconcile(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.sched.Start()
	zap.L().Info("maintenance scheduler started",
		zap.Duration("sweepInterval", s.cfg.SweepInterval),
		zap.Duration("reconcileInterval", s.cfg.ReconcileInterval))
	return nil
}

func (s *Scheduler) Stop() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) runSweep(ctx context.Context) {
	result, err := s.sweeper.SweepStale(ctx, s.cfg.BatchSize, false)
	if err != nil {
		zap.L().Error("scheduled stale sweep failed", zap.Error(err))
		return
	}
	if result.Processed > 0 {
		zap.L().Info("scheduled stale sweep done",
			zap.Int("processed", result.Processed),
			zap.Int("credited", result.Credited),
			zap.Int64("totalPointsDelta", result.TotalPointsDelta))
	}
}

func (s *Scheduler) runBackfill(ctx context.Context) {
	result, err := s.sweeper.BackfillOrphans(ctx, s.cfg.BatchSize, false)
	if err != nil {
		zap.L().Error("scheduled orphan backfill failed", zap.Error(err))
		return
	}
	if result.Processed > 0 {
		zap.L().Info("scheduled orphan backfill done",
			zap.Int("processed", result.Processed),
			zap.Int("credited", result.Credited),
			zap.Int64("totalPointsDelta", result.TotalPointsDelta))
	}
}

// runReconcile pages through the whole user base, one batch per call of
// the page loop, restoring balances as it goes.
func (s *Scheduler) runReconcile(ctx context.Context) {
	offset := 0
	for {
		result, err := s.reconciler.ReconcileBatch(ctx, s.cfg.BatchSize, offset, false)
		if err != nil {
			zap.L().Error("scheduled reconcile failed", zap.Int("offset", offset), zap.Error(err))
			return
		}
		if result.Processed == 0 && result.Skipped == 0 {
			break
		}
		if result.Changed > 0 || result.Flagged > 0 {
			zap.L().Info("scheduled reconcile batch done",
				zap.Int("offset", offset),
				zap.Int("changed", result.Changed),
				zap.Int("flagged", result.Flagged),
				zap.Int64("totalPointsDelta", result.TotalPointsDelta))
		}
		offset += s.cfg.BatchSize
	}
}
