package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"adpilot/internal/core/domain"
)

// scopeAll is the cache key for the whole unified campaign view. The
// engine currently aggregates one scope; the key exists so narrower
// scopes can share the machinery later.
const scopeAll = "campaigns:all"

// RefreshFunc produces a fresh aggregation result on cache miss.
type RefreshFunc func(ctx context.Context) (*domain.AggregationResult, error)

// Cache is a TTL cache over the aggregation result with single-flight
// refresh: concurrent callers hitting a stale or missing key share one
// upstream refresh and all receive its value or its error. On refresh
// failure the last good value is served while it is within the grace
// period (stale-while-revalidate).
type Cache struct {
	ttl     time.Duration
	grace   time.Duration
	refresh RefreshFunc
	logger  *slog.Logger

	group singleflight.Group

	mu        sync.Mutex
	value     *domain.AggregationResult
	fetchedAt time.Time
}

// NewCache builds a cache. ttl is how long a value is considered fresh,
// grace how much longer a stale value may be served when refresh fails.
func NewCache(ttl, grace time.Duration, refresh RefreshFunc, logger *slog.Logger) *Cache {
	return &Cache{ttl: ttl, grace: grace, refresh: refresh, logger: logger}
}

// Get returns the cached aggregation, refreshing it when stale. The
// second return reports whether this call performed (or joined) a
// refresh, which callers use for adapter call accounting.
func (c *Cache) Get(ctx context.Context) (*domain.AggregationResult, bool, error) {
	if v, ok := c.fresh(); ok {
		return v, false, nil
	}

	v, err, _ := c.group.Do(scopeAll, func() (interface{}, error) {
		// A waiter queued behind a completed refresh sees a fresh value here.
		if v, ok := c.fresh(); ok {
			return v, nil
		}

		// The refresh is shared by every waiter, so it must not die with
		// whichever caller happened to start it. The aggregator bounds the
		// fetch with its own deadline.
		rctx := context.WithoutCancel(ctx)
		res, err := c.refresh(rctx)
		if err != nil {
			if stale, ok := c.withinGrace(); ok {
				c.logger.Warn("cache refresh failed, serving stale value", slog.Any("error", err))
				return stale, nil
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrCacheExpired, err)
		}

		c.mu.Lock()
		c.value = res
		c.fetchedAt = time.Now()
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, true, err
	}
	return v.(*domain.AggregationResult), true, nil
}

func (c *Cache) fresh() (*domain.AggregationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.value, true
	}
	return nil, false
}

func (c *Cache) withinGrace() (*domain.AggregationResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.value != nil && time.Since(c.fetchedAt) < c.ttl+c.grace {
		return c.value, true
	}
	return nil, false
}
