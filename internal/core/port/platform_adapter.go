package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// PlatformAdapter is the uniform contract over one vendor ad platform. It
// is an outbound port; one implementation exists per vendor.
//
// Implementations own their vendor's pagination, transient-error retries,
// circuit breaking and rate-limit serialization. Callers see either a
// complete result or a classified *domain.AdapterError — never a silently
// truncated page set.
type PlatformAdapter interface {
	// Platform identifies the vendor this adapter talks to.
	Platform() domain.Platform

	// FetchCampaigns returns every campaign on the platform together with
	// its metrics for the window. The result is complete and free of
	// duplicate external ids, or the call fails entirely.
	FetchCampaigns(ctx context.Context, window domain.Window) ([]domain.CampaignMetrics, error)

	// UpdateBudget sets the campaign's daily budget on the vendor side.
	// Calls are serialized per adapter to respect vendor rate limits.
	UpdateBudget(ctx context.Context, externalID string, newBudgetMicros int64) error
}
