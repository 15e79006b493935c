package port

import (
	"context"
	"time"

	"adpilot/internal/core/domain"
)

// RunRepository is the persistence port for campaigns, spend history and
// the append-only optimization audit trail. Implementations must make each
// write atomic per record; a cancelled tick must never leave a half-written
// run behind.
type RunRepository interface {
	// UpsertCampaigns stores the merged campaign view, keyed by
	// (platform, external_id), and returns the campaigns with their local
	// ids filled in. Daily spend history is recorded as a side effect.
	UpsertCampaigns(ctx context.Context, items []domain.CampaignMetrics) ([]domain.CampaignMetrics, error)

	// CreateRun appends one immutable OptimizationRun. The write is atomic:
	// it either fully persists or fails without a partial row.
	CreateRun(ctx context.Context, run domain.OptimizationRun) error

	// ListRuns returns the most recent runs, newest first, optionally
	// filtered by campaign.
	ListRuns(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error)

	// TrailingAvgSpendMicros returns the average daily spend per campaign
	// over the past days. Campaigns without history are absent from the map.
	TrailingAvgSpendMicros(ctx context.Context, days int) (map[int64]int64, error)

	// AppliedSince returns ids of campaigns with an applied run created
	// after the given time. Used for overspend alerting on the next fetch.
	AppliedSince(ctx context.Context, since time.Time) (map[int64]bool, error)
}
