package usecase

import (
	"context"
	"log/slog"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// SlogAlerter is the default alert sink: structured warnings on the
// application logger. Operations can replace it with a real pager or
// webhook sink behind the same port.
type SlogAlerter struct {
	logger *slog.Logger
}

// NewSlogAlerter builds the logging alerter.
func NewSlogAlerter(logger *slog.Logger) *SlogAlerter {
	return &SlogAlerter{logger: logger}
}

var _ port.Alerter = (*SlogAlerter)(nil)

func (a *SlogAlerter) BudgetOverspend(_ context.Context, campaign domain.Campaign, spendMicros int64) {
	a.logger.Warn("campaign overspending after applied budget change",
		slog.String("platform", string(campaign.Platform)),
		slog.String("external_id", campaign.ExternalID),
		slog.Int64("daily_budget_micros", campaign.DailyBudgetMicros),
		slog.Int64("spend_micros", spendMicros))
}

func (a *SlogAlerter) HighFailureRate(_ context.Context, failed, total int) {
	a.logger.Warn("high adapter failure rate in tick",
		slog.Int("failed", failed),
		slog.Int("total", total))
}
