package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Optimizer is the primary inbound port of the engine. It is consumed by
// the HTTP layer and the scheduler.
type Optimizer interface {
	// UnifiedCampaigns returns the current merged campaign view across all
	// platforms, served through the metrics cache. The result carries a
	// degradation flag when one or more platforms were unreachable; it only
	// errors when no platform at all could be fetched.
	UnifiedCampaigns(ctx context.Context) (*domain.AggregationResult, error)

	// RunTick executes one optimization pass: aggregate, derive, plan,
	// gate, execute and audit. Returns domain.ErrTickInProgress when a
	// previous tick has not finished.
	RunTick(ctx context.Context) (*TickReport, error)

	// ListRuns exposes the audit trail.
	ListRuns(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error)
}

// TickReport summarizes one tick for logging and the trigger surface.
type TickReport struct {
	Considered       int
	InsufficientData int
	Applied          int
	Skipped          int
	Failed           int
	Degraded         bool
	FailedPlatforms  []domain.Platform
	AdapterCalls     int
	AdapterFailures  int
}
