package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Scheduler drives the optimization loop at a fixed interval. One tick
// runs at a time; a tick still in progress when the next is due makes the
// new one a logged skip, never a queue or a concurrent run.
type Scheduler struct {
	svc      port.Optimizer
	interval time.Duration
	logger   *slog.Logger
}

// New builds a scheduler over the optimizer.
func New(svc port.Optimizer, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{svc: svc, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, firing one tick per interval.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.svc.RunTick(ctx); err != nil {
				if errors.Is(err, domain.ErrTickInProgress) {
					s.logger.Warn("tick skipped, previous tick still running")
					continue
				}
				s.logger.Error("tick failed", slog.Any("error", err))
			}
		}
	}
}
