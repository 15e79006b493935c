package usecase

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// failureAlertRate is the share of failed adapter calls within one tick
// that triggers the high-failure-rate alert.
const failureAlertRate = 0.05

// Params tunes the optimization loop.
type Params struct {
	// TickInterval is the scheduler period; it also bounds the lookback
	// for the overspend check.
	TickInterval time.Duration
	// TrailingDays is the spend history window behind the gate ceiling.
	TrailingDays int
	// OverspendRatio is the spend-to-budget multiple that raises an alert.
	OverspendRatio float64
}

// Optimizer implements port.Optimizer: it owns the tick pipeline
// (aggregate, derive, plan, gate, execute, audit) and the advisory
// in-progress flag that keeps ticks from overlapping.
type Optimizer struct {
	cache      *Cache
	aggregator *Aggregator
	planner    *Planner
	gate       *Gate
	executor   *Executor
	repo       port.RunRepository
	alerter    port.Alerter
	logger     *slog.Logger
	params     Params

	inProgress atomic.Bool
}

// NewOptimizer wires the tick pipeline. The cache must be backed by the
// given aggregator's Aggregate.
func NewOptimizer(cache *Cache, aggregator *Aggregator, planner *Planner, gate *Gate, executor *Executor,
	repo port.RunRepository, alerter port.Alerter, params Params, logger *slog.Logger) *Optimizer {
	if params.TrailingDays <= 0 {
		params.TrailingDays = 7
	}
	if params.OverspendRatio <= 0 {
		params.OverspendRatio = 1.10
	}
	return &Optimizer{
		cache:      cache,
		aggregator: aggregator,
		planner:    planner,
		gate:       gate,
		executor:   executor,
		repo:       repo,
		alerter:    alerter,
		logger:     logger,
		params:     params,
	}
}

var _ port.Optimizer = (*Optimizer)(nil)

// UnifiedCampaigns serves the merged view through the cache.
func (o *Optimizer) UnifiedCampaigns(ctx context.Context) (*domain.AggregationResult, error) {
	res, _, err := o.cache.Get(ctx)
	return res, err
}

// ListRuns exposes the audit trail.
func (o *Optimizer) ListRuns(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error) {
	return o.repo.ListRuns(ctx, campaignID, limit)
}

// RunTick executes one optimization pass. Overlapping ticks are refused
// with domain.ErrTickInProgress; the caller (scheduler or operator) skips
// and retries on the next interval, never queues.
func (o *Optimizer) RunTick(ctx context.Context) (*port.TickReport, error) {
	if !o.inProgress.CompareAndSwap(false, true) {
		return nil, domain.ErrTickInProgress
	}
	defer o.inProgress.Store(false)

	started := time.Now()
	report := &port.TickReport{}

	agg, refreshed, err := o.cache.Get(ctx)
	if err != nil {
		return nil, err
	}
	report.Degraded = agg.Degraded
	report.FailedPlatforms = agg.FailedPlatforms
	if refreshed {
		report.AdapterCalls += o.aggregator.PlatformCount()
		report.AdapterFailures += len(agg.FailedPlatforms)
	}

	o.checkOverspend(ctx, agg)

	proposals, insufficient := o.planner.Plan(agg.Items)
	report.Considered = len(proposals)
	report.InsufficientData = len(insufficient)
	for _, item := range insufficient {
		o.logger.Info("campaign excluded from ranking",
			slog.String("platform", string(item.Campaign.Platform)),
			slog.String("external_id", item.Campaign.ExternalID),
			slog.String("status", "insufficient data"))
	}

	trailing, err := o.repo.TrailingAvgSpendMicros(ctx, o.params.TrailingDays)
	if err != nil {
		return nil, err
	}

	decisions := make([]Decision, 0, len(proposals))
	for _, p := range proposals {
		decisions = append(decisions, o.gate.Decide(p, trailing[p.Campaign.ID]))
	}

	stats, execErr := o.executor.Execute(ctx, decisions)
	report.Applied = stats.Applied
	report.Skipped = stats.Skipped
	report.Failed = stats.Failed
	report.AdapterCalls += stats.Calls
	report.AdapterFailures += stats.Failures

	if report.AdapterCalls > 0 {
		rate := float64(report.AdapterFailures) / float64(report.AdapterCalls)
		if rate >= failureAlertRate {
			o.alerter.HighFailureRate(ctx, report.AdapterFailures, report.AdapterCalls)
		}
	}

	if execErr != nil {
		// Remote budgets mutated before the audit failure stay applied but
		// unaudited until the next successful tick. Deliberate asymmetry.
		o.logger.Error("tick aborted on audit persistence failure; applied remote changes are unaudited",
			slog.Int("applied", stats.Applied),
			slog.Any("error", execErr))
		return report, execErr
	}

	o.logger.Info("optimization tick finished",
		slog.Int("considered", report.Considered),
		slog.Int("applied", report.Applied),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.Int("insufficient_data", report.InsufficientData),
		slog.Bool("degraded", report.Degraded),
		slog.Duration("took", time.Since(started)))
	return report, nil
}

// checkOverspend alerts on campaigns whose observed spend exceeds the
// ceiling ratio of their daily budget right after an applied change.
func (o *Optimizer) checkOverspend(ctx context.Context, agg *domain.AggregationResult) {
	since := time.Now().Add(-o.params.TickInterval)
	applied, err := o.repo.AppliedSince(ctx, since)
	if err != nil {
		o.logger.Warn("overspend check skipped", slog.Any("error", err))
		return
	}
	if len(applied) == 0 {
		return
	}
	for _, item := range agg.Items {
		c := item.Campaign
		if !applied[c.ID] || c.DailyBudgetMicros <= 0 {
			continue
		}
		limit := int64(float64(c.DailyBudgetMicros) * o.params.OverspendRatio)
		if item.Metrics.CostMicros > limit {
			o.alerter.BudgetOverspend(ctx, c, item.Metrics.CostMicros)
		}
	}
}
