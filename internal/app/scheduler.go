package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/example/playersync/internal/ports/primary"
)

// Scheduler drives the sweep on a fixed period. It runs sweeps one at a
// time; ticks that fire while a sweep is still in flight are skipped by the
// sweep service's own guard, so two passes never overlap the directory.
type Scheduler struct {
	sweeps   primary.SweepService
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler creates a scheduler for the given sweep service.
func NewScheduler(sweeps primary.SweepService, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{sweeps: sweeps, interval: interval, logger: logger}
}

// Run blocks, sweeping once immediately and then on every tick, until ctx is
// cancelled. Sweep failures are logged and retried on the next tick.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("sweep scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("sweep scheduler stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.sweeps.RunSweep(ctx); err != nil {
		if errors.Is(err, primary.ErrSweepRunning) {
			s.logger.Info("sweep tick skipped, previous pass still running")
			return
		}
		s.logger.Error("sweep failed", "error", err)
	}
}
