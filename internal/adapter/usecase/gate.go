package usecase

import (
	"fmt"
	"math"

	"adpilot/internal/core/domain"
)

// GateConfig tunes the apply/skip decision.
type GateConfig struct {
	// ApplyThreshold is the minimum relative change |new-old|/old required
	// to act on a proposal.
	ApplyThreshold float64
	// CeilingRatio caps a new daily budget at this multiple of the
	// campaign's trailing average daily spend.
	CeilingRatio float64
	// CeilingOverride disables the spend ceiling entirely.
	CeilingOverride bool
}

// Decision is the gate's verdict on one proposal. Proposal carries the
// final (possibly ceiling-clamped) budget.
type Decision struct {
	Proposal domain.Proposal
	Apply    bool
}

// Gate decides whether a proposal is worth a remote mutation. Small
// changes are skipped; large ones are clamped to the safety ceiling, not
// rejected.
type Gate struct {
	cfg GateConfig
}

// NewGate builds a gate, normalizing out-of-range config.
func NewGate(cfg GateConfig) *Gate {
	if cfg.ApplyThreshold <= 0 {
		cfg.ApplyThreshold = 0.10
	}
	if cfg.CeilingRatio <= 0 {
		cfg.CeilingRatio = 1.10
	}
	return &Gate{cfg: cfg}
}

// Decide clamps the proposal to the spend ceiling and applies the
// threshold to the clamped value. trailingAvgMicros is the campaign's
// trailing average daily spend; zero means no history, which disables the
// ceiling for that campaign.
func (g *Gate) Decide(p domain.Proposal, trailingAvgMicros int64) Decision {
	if !g.cfg.CeilingOverride && trailingAvgMicros > 0 {
		ceiling := int64(math.Floor(float64(trailingAvgMicros) * g.cfg.CeilingRatio))
		if p.NewBudgetMicros > ceiling {
			p.NewBudgetMicros = ceiling
			p.Reason += fmt.Sprintf(" (clamped to spend ceiling %d)", ceiling)
		}
	}

	if p.OldBudgetMicros == 0 {
		if p.NewBudgetMicros == 0 {
			p.Reason = "below threshold: " + p.Reason
			return Decision{Proposal: p, Apply: false}
		}
		return Decision{Proposal: p, Apply: true}
	}

	change := math.Abs(float64(p.Delta())) / float64(p.OldBudgetMicros)
	if change < g.cfg.ApplyThreshold {
		p.Reason = "below threshold: " + p.Reason
		return Decision{Proposal: p, Apply: false}
	}
	return Decision{Proposal: p, Apply: true}
}
