package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// Alerter receives operational alerts raised during a tick. The default
// implementation logs; operations can plug in a real sink.
type Alerter interface {
	// BudgetOverspend fires when a campaign with a recently applied budget
	// change is observed spending above the ceiling ratio of its daily
	// budget.
	BudgetOverspend(ctx context.Context, campaign domain.Campaign, spendMicros int64)

	// HighFailureRate fires when the share of failed adapter calls within
	// one tick reaches the alert threshold.
	HighFailureRate(ctx context.Context, failed, total int)
}
