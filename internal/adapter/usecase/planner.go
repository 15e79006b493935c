package usecase

import (
	"fmt"
	"math"
	"sort"

	"adpilot/internal/core/domain"
)

// PlannerConfig tunes the deterministic reallocation algorithm.
type PlannerConfig struct {
	// MaxDeltaPerTick clamps any single campaign's budget change per tick,
	// as a fraction of its current daily budget.
	MaxDeltaPerTick float64
	// RankSpread is the uncapped delta fraction assigned to the extreme
	// ranks; intermediate ranks interpolate linearly. Values above
	// MaxDeltaPerTick deliberately saturate the clamp at the extremes.
	RankSpread float64
	// MaxGrowthFactor caps the sum of proposed daily budgets relative to
	// the sum of current ones. Must be >= 1.0; lower values are lifted.
	MaxGrowthFactor float64
}

// Planner turns a merged campaign set into budget proposals. The
// algorithm is pure: identical input always yields identical proposals.
type Planner struct {
	cfg PlannerConfig
}

// NewPlanner builds a planner, normalizing out-of-range config.
func NewPlanner(cfg PlannerConfig) *Planner {
	if cfg.MaxDeltaPerTick <= 0 {
		cfg.MaxDeltaPerTick = 0.20
	}
	if cfg.RankSpread <= 0 {
		cfg.RankSpread = cfg.MaxDeltaPerTick
	}
	if cfg.MaxGrowthFactor < 1.0 {
		cfg.MaxGrowthFactor = 1.0
	}
	return &Planner{cfg: cfg}
}

// Plan ranks enabled campaigns with defined ROI and proposes one budget
// change per ranked campaign, unchanged ones included. Campaigns whose
// ROI cannot be computed are returned separately; they are reported but
// never ranked and never audited.
func (p *Planner) Plan(items []domain.CampaignMetrics) (proposals []domain.Proposal, insufficient []domain.CampaignMetrics) {
	type ranked struct {
		cm  domain.CampaignMetrics
		roi float64
	}
	eligible := make([]ranked, 0, len(items))
	for _, item := range items {
		if item.Campaign.Status != domain.StatusEnabled {
			continue
		}
		d := domain.Derive(item.Metrics)
		if !d.ROIDefined {
			insufficient = append(insufficient, item)
			continue
		}
		eligible = append(eligible, ranked{cm: item, roi: d.ROI})
	}

	// ROI descending, ties by ascending campaign key. Stable total order.
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].roi != eligible[j].roi {
			return eligible[i].roi > eligible[j].roi
		}
		return eligible[i].cm.Campaign.Key().Less(eligible[j].cm.Campaign.Key())
	})

	n := len(eligible)
	proposals = make([]domain.Proposal, 0, n)
	for i, e := range eligible {
		score := 0.0
		if n > 1 {
			score = 1 - 2*float64(i)/float64(n-1)
		}
		frac := score * p.cfg.RankSpread
		if frac > p.cfg.MaxDeltaPerTick {
			frac = p.cfg.MaxDeltaPerTick
		}
		if frac < -p.cfg.MaxDeltaPerTick {
			frac = -p.cfg.MaxDeltaPerTick
		}
		old := e.cm.Campaign.DailyBudgetMicros
		delta := int64(math.Round(float64(old) * frac))
		next := old + delta
		if next < 0 {
			next = 0
		}
		proposals = append(proposals, domain.Proposal{
			Campaign:        e.cm.Campaign,
			OldBudgetMicros: old,
			NewBudgetMicros: next,
			Reason:          fmt.Sprintf("roi %.4f, rank %d of %d", e.roi, i+1, n),
		})
	}

	p.enforceGrowthCap(proposals)
	return proposals, insufficient
}

// enforceGrowthCap scales proposed increases down so the sum of proposed
// daily budgets never exceeds sum(current) * MaxGrowthFactor. Reductions
// are proportional across increases, with the rounding remainder taken
// from the largest increases first.
func (p *Planner) enforceGrowthCap(proposals []domain.Proposal) {
	var sumOld, sumNew, totalInc int64
	for _, pr := range proposals {
		sumOld += pr.OldBudgetMicros
		sumNew += pr.NewBudgetMicros
		if d := pr.Delta(); d > 0 {
			totalInc += d
		}
	}
	cap64 := int64(math.Floor(float64(sumOld) * p.cfg.MaxGrowthFactor))
	if sumNew <= cap64 || totalInc == 0 {
		return
	}
	excess := sumNew - cap64

	// Indices of increases, largest delta first; ties by ascending key so
	// the pass is reproducible.
	inc := make([]int, 0, len(proposals))
	for i, pr := range proposals {
		if pr.Delta() > 0 {
			inc = append(inc, i)
		}
	}
	sort.Slice(inc, func(a, b int) bool {
		di, dj := proposals[inc[a]].Delta(), proposals[inc[b]].Delta()
		if di != dj {
			return di > dj
		}
		return proposals[inc[a]].Campaign.Key().Less(proposals[inc[b]].Campaign.Key())
	})

	// Proportional pass.
	remaining := excess
	for _, i := range inc {
		cut := int64(math.Floor(float64(excess) * float64(proposals[i].Delta()) / float64(totalInc)))
		if cut > 0 {
			proposals[i].NewBudgetMicros -= cut
			proposals[i].Reason += " (scaled for growth cap)"
			remaining -= cut
		}
	}
	// Rounding remainder, largest increases first.
	for _, i := range inc {
		if remaining <= 0 {
			break
		}
		d := proposals[i].Delta()
		if d <= 0 {
			continue
		}
		cut := remaining
		if cut > d {
			cut = d
		}
		proposals[i].NewBudgetMicros -= cut
		remaining -= cut
	}
}
