package configs

import "time"

// Optimizer configures the budget optimization loop.
type Optimizer struct {
	// TickInterval is how often the scheduler runs one optimization pass.
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"1h"`
	// SchedulerEnabled turns the periodic driver off; ticks can still be
	// triggered through the HTTP surface.
	SchedulerEnabled bool `env:"SCHEDULER_ENABLED" envDefault:"true"`
	// CacheTTL is how long the aggregated campaign view stays fresh.
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	// CacheGrace is how much longer a stale view may be served when a
	// refresh fails.
	CacheGrace time.Duration `env:"CACHE_GRACE" envDefault:"15m"`
	// FetchDeadline bounds one whole parallel platform fan-out.
	FetchDeadline time.Duration `env:"FETCH_DEADLINE" envDefault:"10s"`
	// WindowDays is the metrics reporting window.
	WindowDays int `env:"WINDOW_DAYS" envDefault:"7"`
	// MaxDeltaPerTick clamps a single campaign's budget change per tick.
	MaxDeltaPerTick float64 `env:"MAX_DELTA_PER_TICK" envDefault:"0.20"`
	// RankSpread is the uncapped delta fraction at the extreme ROI ranks.
	RankSpread float64 `env:"RANK_SPREAD" envDefault:"0.30"`
	// MaxGrowthFactor caps total proposed daily budget relative to the
	// current total.
	MaxGrowthFactor float64 `env:"MAX_GROWTH_FACTOR" envDefault:"1.10"`
	// ApplyThreshold is the minimum relative change worth a remote call.
	ApplyThreshold float64 `env:"APPLY_THRESHOLD" envDefault:"0.10"`
	// OverspendCeilingRatio caps new budgets at this multiple of trailing
	// average spend and drives the overspend alert.
	OverspendCeilingRatio float64 `env:"OVERSPEND_CEILING_RATIO" envDefault:"1.10"`
	// CeilingOverride disables the spend ceiling. Operator escape hatch.
	CeilingOverride bool `env:"CEILING_OVERRIDE" envDefault:"false"`
	// TrailingWindowDays is the spend history window behind the ceiling.
	TrailingWindowDays int `env:"TRAILING_WINDOW_DAYS" envDefault:"7"`
}
