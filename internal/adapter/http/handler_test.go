package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// fakeOptimizer implements port.Optimizer with pluggable functions.
type fakeOptimizer struct {
	unified  func(ctx context.Context) (*domain.AggregationResult, error)
	tick     func(ctx context.Context) (*port.TickReport, error)
	listRuns func(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error)
}

func (f *fakeOptimizer) UnifiedCampaigns(ctx context.Context) (*domain.AggregationResult, error) {
	return f.unified(ctx)
}

func (f *fakeOptimizer) RunTick(ctx context.Context) (*port.TickReport, error) {
	return f.tick(ctx)
}

func (f *fakeOptimizer) ListRuns(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error) {
	return f.listRuns(ctx, campaignID, limit)
}

func newTestHandler(svc port.Optimizer) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger).Router()
}

func TestHealthz(t *testing.T) {
	h := newTestHandler(&fakeOptimizer{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCampaigns(t *testing.T) {
	svc := &fakeOptimizer{
		unified: func(context.Context) (*domain.AggregationResult, error) {
			return &domain.AggregationResult{
				Items: []domain.CampaignMetrics{
					{
						Campaign: domain.Campaign{
							ID:                1,
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
						// No conversions: CPA and ROI stay null in the payload.
						Campaign: domain.Campaign{
							ID:         2,
							Platform:   domain.PlatformMeta,
							ExternalID: "m-001",
							Status:     domain.StatusEnabled,
						},
						Metrics: domain.MetricsSnapshot{Impressions: 100, CostMicros: 5_000_000},
					},
				},
				Degraded:        true,
				FailedPlatforms: []domain.Platform{domain.PlatformMeta},
			}, nil
		},
	}

	h := newTestHandler(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp campaignsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Degraded)
	assert.Equal(t, []string{"meta"}, resp.FailedPlatforms)
	require.Len(t, resp.Campaigns, 2)

	withROI := resp.Campaigns[0]
	require.NotNil(t, withROI.Metrics.ROI)
	assert.InDelta(t, 2.0, *withROI.Metrics.ROI, 1e-9)
	require.NotNil(t, withROI.Metrics.CPAMicros)
	assert.Equal(t, int64(5_000_000), *withROI.Metrics.CPAMicros)

	noROI := resp.Campaigns[1]
	assert.Nil(t, noROI.Metrics.ROI)
	assert.Nil(t, noROI.Metrics.CPAMicros)
	assert.Equal(t, "insufficient data", noROI.Metrics.Status)
}

func TestGetCampaignsAllPlatformsDown(t *testing.T) {
	svc := &fakeOptimizer{
		unified: func(context.Context) (*domain.AggregationResult, error) {
			return nil, domain.ErrAllPlatformsUnavailable
		},
	}
	h := newTestHandler(svc)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/campaigns", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPostTick(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := &fakeOptimizer{
			tick: func(context.Context) (*port.TickReport, error) {
				return &port.TickReport{Considered: 4, Applied: 2, Skipped: 2}, nil
			},
		}
		h := newTestHandler(svc)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/optimize/tick", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var report port.TickReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.Equal(t, 2, report.Applied)
	})

	t.Run("already running", func(t *testing.T) {
		svc := &fakeOptimizer{
			tick: func(context.Context) (*port.TickReport, error) {
				return nil, domain.ErrTickInProgress
			},
		}
		h := newTestHandler(svc)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/optimize/tick", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestGetRuns(t *testing.T) {
	var gotCampaignID *int64
	var gotLimit int
	svc := &fakeOptimizer{
		listRuns: func(_ context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error) {
			gotCampaignID = campaignID
			gotLimit = limit
			return []domain.OptimizationRun{{
				ID:              "8b7e6a3e-0000-0000-0000-000000000001",
				CampaignID:      7,
				OldBudgetMicros: 100_000_000,
				NewBudgetMicros: 120_000_000,
				Reason:          "roi 2.0000, rank 1 of 4",
				Outcome:         domain.OutcomeApplied,
				CreatedAt:       time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			}}, nil
		},
	}
	h := newTestHandler(svc)

	t.Run("filtered", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs?campaign_id=7&limit=10", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotCampaignID)
		assert.Equal(t, int64(7), *gotCampaignID)
		assert.Equal(t, 10, gotLimit)

		var views []runView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
		require.Len(t, views, 1)
		assert.Equal(t, "applied", views[0].Outcome)
	})

	t.Run("invalid campaign_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs?campaign_id=abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/runs?limit=-1", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
