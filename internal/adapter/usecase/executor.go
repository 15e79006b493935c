package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// ExecutionStats summarizes one executor pass for alerting and reporting.
// Calls and Failures count only adapter calls actually attempted; a
// decision failed without reaching an adapter contributes to Failed alone.
type ExecutionStats struct {
	Applied  int
	Skipped  int
	Failed   int
	Calls    int
	Failures int
}

// Executor applies gated decisions to the owning platform adapters and
// persists the audit trail. Campaign mutations are isolated: one failure
// never blocks or reverses another campaign's update. Mutations run
// concurrently across platforms; each adapter serializes its own calls.
type Executor struct {
	adapters map[domain.Platform]port.PlatformAdapter
	repo     port.RunRepository
	logger   *slog.Logger
	now      func() time.Time // overridable in tests
}

// NewExecutor builds an executor over the given adapters.
func NewExecutor(adapters []port.PlatformAdapter, repo port.RunRepository, logger *slog.Logger) *Executor {
	byPlatform := make(map[domain.Platform]port.PlatformAdapter, len(adapters))
	for _, ad := range adapters {
		byPlatform[ad.Platform()] = ad
	}
	return &Executor{adapters: byPlatform, repo: repo, logger: logger, now: time.Now}
}

// Execute mutates remote budgets for apply decisions, then persists one
// OptimizationRun per decision in input order. Remote mutation and audit
// are intentionally not transactional: a persistence failure aborts the
// remaining audit writes and fails the tick, but budgets already changed
// on the vendor side stay changed and go unaudited until the next
// successful tick reconciles them. Operators must treat a persistence
// error here as exactly that gap.
func (e *Executor) Execute(ctx context.Context, decisions []Decision) (ExecutionStats, error) {
	var stats ExecutionStats

	outcomes := make([]domain.RunOutcome, len(decisions))
	failErrs := make([]error, len(decisions))
	attempted := make([]bool, len(decisions))

	byPlatform := make(map[domain.Platform][]int)
	for i, d := range decisions {
		if !d.Apply {
			outcomes[i] = domain.OutcomeSkipped
			continue
		}
		p := d.Proposal.Campaign.Platform
		byPlatform[p] = append(byPlatform[p], i)
	}

	// One worker per platform; within a platform updates run in order.
	var g errgroup.Group
	for platform, idxs := range byPlatform {
		platform, idxs := platform, idxs
		adapter, ok := e.adapters[platform]
		g.Go(func() error {
			for _, i := range idxs {
				d := decisions[i]
				if !ok {
					outcomes[i] = domain.OutcomeFailed
					failErrs[i] = fmt.Errorf("no adapter for platform %s", platform)
					continue
				}
				attempted[i] = true
				err := adapter.UpdateBudget(ctx, d.Proposal.Campaign.ExternalID, d.Proposal.NewBudgetMicros)
				if err != nil {
					// Budget unchanged; the campaign is reconsidered next tick.
					outcomes[i] = domain.OutcomeFailed
					failErrs[i] = err
					e.logger.Warn("budget update failed",
						slog.String("platform", string(platform)),
						slog.String("external_id", d.Proposal.Campaign.ExternalID),
						slog.Any("error", err))
					continue
				}
				outcomes[i] = domain.OutcomeApplied
			}
			return nil
		})
	}
	_ = g.Wait()

	for i := range decisions {
		switch outcomes[i] {
		case domain.OutcomeApplied:
			stats.Applied++
		case domain.OutcomeSkipped:
			stats.Skipped++
		case domain.OutcomeFailed:
			stats.Failed++
		}
		if attempted[i] {
			stats.Calls++
			if outcomes[i] == domain.OutcomeFailed {
				stats.Failures++
			}
		}
	}

	// Audit every decision, input order, one atomic write per record.
	for i, d := range decisions {
		run := domain.OptimizationRun{
			ID:              uuid.NewString(),
			CampaignID:      d.Proposal.Campaign.ID,
			OldBudgetMicros: d.Proposal.OldBudgetMicros,
			NewBudgetMicros: d.Proposal.NewBudgetMicros,
			Reason:          d.Proposal.Reason,
			Outcome:         outcomes[i],
			CreatedAt:       e.now().UTC(),
		}
		if outcomes[i] == domain.OutcomeFailed && failErrs[i] != nil {
			run.Reason = fmt.Sprintf("%s; error: %v", run.Reason, failErrs[i])
		}
		if err := e.repo.CreateRun(ctx, run); err != nil {
			return stats, fmt.Errorf("%w: run %d of %d: %v", domain.ErrPersistence, i+1, len(decisions), err)
		}
	}
	return stats, nil
}
