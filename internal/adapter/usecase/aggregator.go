package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Aggregator fetches campaigns from every configured platform in parallel
// and merges them into one consistent view. A platform failing or timing
// out degrades the result instead of aborting it; only all platforms
// failing is a hard error.
type Aggregator struct {
	adapters   []port.PlatformAdapter
	repo       port.RunRepository
	deadline   time.Duration
	windowDays int
	logger     *slog.Logger
}

// NewAggregator builds an aggregator over the given adapters. deadline
// bounds one whole fan-out; windowDays sets the reporting window.
func NewAggregator(adapters []port.PlatformAdapter, repo port.RunRepository, deadline time.Duration, windowDays int, logger *slog.Logger) *Aggregator {
	if windowDays <= 0 {
		windowDays = 7
	}
	return &Aggregator{
		adapters:   adapters,
		repo:       repo,
		deadline:   deadline,
		windowDays: windowDays,
		logger:     logger,
	}
}

// PlatformCount reports how many adapters one aggregation fans out to.
func (a *Aggregator) PlatformCount() int { return len(a.adapters) }

// Aggregate runs the parallel fetch, merges the results deterministically
// and persists the merged view so campaigns carry local ids.
func (a *Aggregator) Aggregate(ctx context.Context) (*domain.AggregationResult, error) {
	// The deadline bounds only the fetch fan-out. A platform that eats the
	// whole deadline before degrading must not take the persist step down
	// with it, so the merged view is stored on the caller's context.
	fetchCtx, cancel := context.WithTimeout(ctx, a.deadline)
	defer cancel()

	window := domain.LastDays(a.windowDays)

	var (
		mu     sync.Mutex
		items  []domain.CampaignMetrics
		failed []domain.Platform
	)
	g, gctx := errgroup.WithContext(fetchCtx)
	for _, ad := range a.adapters {
		ad := ad
		g.Go(func() error {
			batch, err := ad.FetchCampaigns(gctx, window)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// One platform failing must not abort the others.
				a.logger.Warn("platform fetch failed",
					slog.String("platform", string(ad.Platform())),
					slog.Any("error", err))
				failed = append(failed, ad.Platform())
				return nil
			}
			items = append(items, batch...)
			return nil
		})
	}
	_ = g.Wait()

	if len(failed) == len(a.adapters) {
		return nil, fmt.Errorf("%w: %v", domain.ErrAllPlatformsUnavailable, failed)
	}

	// Stable order: platform then external id. Required for reproducible
	// planning and test output.
	sort.Slice(items, func(i, j int) bool {
		return items[i].Campaign.Key().Less(items[j].Campaign.Key())
	})
	sort.Slice(failed, func(i, j int) bool { return failed[i] < failed[j] })

	stored, err := a.repo.UpsertCampaigns(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("persist merged view: %w", err)
	}

	return &domain.AggregationResult{
		Items:           stored,
		Degraded:        len(failed) > 0,
		FailedPlatforms: failed,
	}, nil
}
