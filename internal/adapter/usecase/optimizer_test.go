package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

// twoCampaigns is a google pair with ROI 2.0 (g-001) and 0.5 (g-002),
// both on a 100M daily budget.
func twoCampaigns() []domain.CampaignMetrics {
	return []domain.CampaignMetrics{
		{
			Campaign: domain.Campaign{
				Platform:          domain.PlatformGoogle,
				ExternalID:        "g-001",
				Name:              "branded search",
				Status:            domain.StatusEnabled,
				DailyBudgetMicros: 100_000_000,
			},
			Metrics: domain.MetricsSnapshot{
				Impressions:           10_000,
				Clicks:                500,
				Conversions:           10,
				CostMicros:            50_000_000,
				ConversionValueMicros: 150_000_000,
			},
		},
		{
			Campaign: domain.Campaign{
				Platform:          domain.PlatformGoogle,
				ExternalID:        "g-002",
				Name:              "display retargeting",
				Status:            domain.StatusEnabled,
				DailyBudgetMicros: 100_000_000,
			},
			Metrics: domain.MetricsSnapshot{
				Impressions:           40_000,
				Clicks:                300,
				Conversions:           5,
				CostMicros:            50_000_000,
				ConversionValueMicros: 75_000_000,
			},
		},
	}
}

func newTickOptimizer(t *testing.T, adapters []port.PlatformAdapter, repo port.RunRepository, alerter port.Alerter) *Optimizer {
	logger := discardLogger()
	agg := NewAggregator(adapters, repo, 10*time.Second, 7, logger)
	cache := NewCache(5*time.Minute, 15*time.Minute, agg.Aggregate, logger)
	planner := NewPlanner(PlannerConfig{MaxDeltaPerTick: 0.20, RankSpread: 0.30, MaxGrowthFactor: 1.10})
	gate := NewGate(GateConfig{ApplyThreshold: 0.10, CeilingRatio: 1.10})
	exec := NewExecutor(adapters, repo, logger)
	return NewOptimizer(cache, agg, planner, gate, exec, repo, alerter,
		Params{TickInterval: time.Hour, TrailingDays: 7, OverspendRatio: 1.10}, logger)
}

func TestRunTickEndToEnd(t *testing.T) {
	google := mocks.NewMockPlatformAdapter(t)
	google.EXPECT().Platform().Return(domain.PlatformGoogle).Maybe()
	google.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).Return(twoCampaigns(), nil).Once()
	// Rank spread 0.30 clamps to the 0.20 per-tick limit for both ends of
	// a two-campaign cohort.
	google.EXPECT().UpdateBudget(mock.Anything, "g-001", int64(120_000_000)).Return(nil).Once()
	google.EXPECT().UpdateBudget(mock.Anything, "g-002", int64(80_000_000)).Return(nil).Once()

	var runs []domain.OptimizationRun
	repo := passthroughRepo(t)
	repo.EXPECT().AppliedSince(mock.Anything, mock.Anything).Return(map[int64]bool{}, nil)
	repo.EXPECT().TrailingAvgSpendMicros(mock.Anything, 7).Return(map[int64]int64{}, nil)
	repo.EXPECT().CreateRun(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, run domain.OptimizationRun) error {
			runs = append(runs, run)
			return nil
		})

	alerter := mocks.NewMockAlerter(t)

	opt := newTickOptimizer(t, []port.PlatformAdapter{google}, repo, alerter)
	report, err := opt.RunTick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Considered)
	assert.Equal(t, 2, report.Applied)
	assert.Zero(t, report.Skipped)
	assert.Zero(t, report.Failed)
	assert.Zero(t, report.InsufficientData)
	assert.False(t, report.Degraded)
	// One fetch fan-out plus two budget updates.
	assert.Equal(t, 3, report.AdapterCalls)
	assert.Zero(t, report.AdapterFailures)

	require.Len(t, runs, 2)
	assert.Equal(t, domain.OutcomeApplied, runs[0].Outcome)
	assert.Contains(t, runs[0].Reason, "rank 1 of 2")
}

func TestRunTickRefusesOverlap(t *testing.T) {
	repo := mocks.NewMockRunRepository(t)
	alerter := mocks.NewMockAlerter(t)
	opt := newTickOptimizer(t, nil, repo, alerter)

	opt.inProgress.Store(true)
	_, err := opt.RunTick(context.Background())
	assert.ErrorIs(t, err, domain.ErrTickInProgress)
}

func TestRunTickCountsInsufficientData(t *testing.T) {
	items := twoCampaigns()
	items[1].Metrics.Conversions = 0
	items[1].Metrics.ConversionValueMicros = 0

	google := mocks.NewMockPlatformAdapter(t)
	google.EXPECT().Platform().Return(domain.PlatformGoogle).Maybe()
	google.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).Return(items, nil).Once()

	repo := passthroughRepo(t)
	repo.EXPECT().AppliedSince(mock.Anything, mock.Anything).Return(map[int64]bool{}, nil)
	repo.EXPECT().TrailingAvgSpendMicros(mock.Anything, 7).Return(map[int64]int64{}, nil)
	// The surviving single-campaign cohort proposes no change, so the gate
	// skips it and no budget call happens.
	repo.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(nil)

	alerter := mocks.NewMockAlerter(t)

	opt := newTickOptimizer(t, []port.PlatformAdapter{google}, repo, alerter)
	report, err := opt.RunTick(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Considered)
	assert.Equal(t, 1, report.InsufficientData)
	assert.Equal(t, 1, report.Skipped)
	assert.Zero(t, report.Applied)
}

// TestRunTickHighFailureRateAlert drives one platform down so the
// failure share crosses the alert rate.
func TestRunTickHighFailureRateAlert(t *testing.T) {
	google := mocks.NewMockPlatformAdapter(t)
	google.EXPECT().Platform().Return(domain.PlatformGoogle).Maybe()
	google.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).Return(twoCampaigns(), nil).Once()
	google.EXPECT().UpdateBudget(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	meta := mocks.NewMockPlatformAdapter(t)
	meta.EXPECT().Platform().Return(domain.PlatformMeta).Maybe()
	meta.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).
		Return(nil, domain.NewAdapterError(domain.PlatformMeta, domain.AdapterTimeout, context.DeadlineExceeded)).Once()

	repo := passthroughRepo(t)
	repo.EXPECT().AppliedSince(mock.Anything, mock.Anything).Return(map[int64]bool{}, nil)
	repo.EXPECT().TrailingAvgSpendMicros(mock.Anything, 7).Return(map[int64]int64{}, nil)
	repo.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(nil)

	alerter := mocks.NewMockAlerter(t)
	alerter.EXPECT().HighFailureRate(mock.Anything, 1, 4).Once()

	opt := newTickOptimizer(t, []port.PlatformAdapter{google, meta}, repo, alerter)
	report, err := opt.RunTick(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Degraded)
	assert.Equal(t, []domain.Platform{domain.PlatformMeta}, report.FailedPlatforms)
	assert.Equal(t, 4, report.AdapterCalls)
	assert.Equal(t, 1, report.AdapterFailures)
}

// TestRunTickOverspendAlert checks a recently applied campaign spending
// past the ratio of its daily budget raises the overspend alert.
func TestRunTickOverspendAlert(t *testing.T) {
	items := twoCampaigns()
	items[0].Metrics.CostMicros = 130_000_000 // budget 100M, ratio 1.10

	google := mocks.NewMockPlatformAdapter(t)
	google.EXPECT().Platform().Return(domain.PlatformGoogle).Maybe()
	google.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).Return(items, nil).Once()
	google.EXPECT().UpdateBudget(mock.Anything, mock.Anything, mock.Anything).Return(nil).Twice()

	repo := passthroughRepo(t)
	repo.EXPECT().AppliedSince(mock.Anything, mock.Anything).Return(map[int64]bool{1: true}, nil)
	repo.EXPECT().TrailingAvgSpendMicros(mock.Anything, 7).Return(map[int64]int64{}, nil)
	repo.EXPECT().CreateRun(mock.Anything, mock.Anything).Return(nil)

	alerter := mocks.NewMockAlerter(t)
	alerter.EXPECT().
		BudgetOverspend(mock.Anything, mock.MatchedBy(func(c domain.Campaign) bool {
			return c.ExternalID == "g-001"
		}), int64(130_000_000)).
		Once()

	opt := newTickOptimizer(t, []port.PlatformAdapter{google}, repo, alerter)
	_, err := opt.RunTick(context.Background())
	require.NoError(t, err)
}

func TestUnifiedCampaignsServedFromCache(t *testing.T) {
	google := mocks.NewMockPlatformAdapter(t)
	google.EXPECT().Platform().Return(domain.PlatformGoogle).Maybe()
	google.EXPECT().FetchCampaigns(mock.Anything, mock.Anything).Return(twoCampaigns(), nil).Once()

	repo := passthroughRepo(t)
	alerter := mocks.NewMockAlerter(t)
	opt := newTickOptimizer(t, []port.PlatformAdapter{google}, repo, alerter)

	first, err := opt.UnifiedCampaigns(context.Background())
	require.NoError(t, err)
	second, err := opt.UnifiedCampaigns(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
}
