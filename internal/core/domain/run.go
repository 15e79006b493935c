package domain

import "time"

// RunOutcome is the terminal state of one planning decision for one
// campaign within one tick.
type RunOutcome string

const (
	OutcomeApplied RunOutcome = "applied"
	OutcomeSkipped RunOutcome = "skipped"
	OutcomeFailed  RunOutcome = "failed"
)

// OptimizationRun is the immutable audit record of a budget decision.
// Exactly one row is created per planning decision per campaign per tick
// and it is never mutated afterwards; corrections are new rows.
type OptimizationRun struct {
	ID              string
	CampaignID      int64
	OldBudgetMicros int64
	NewBudgetMicros int64
	Reason          string
	Outcome         RunOutcome
	CreatedAt       time.Time
}

// Proposal is the planner's suggested budget change for one campaign.
// Unchanged campaigns still get a proposal with NewBudgetMicros equal to
// OldBudgetMicros so every considered campaign appears in the audit trail.
type Proposal struct {
	Campaign        Campaign
	OldBudgetMicros int64
	NewBudgetMicros int64
	Reason          string
}

// Delta returns the proposed budget change in micros.
func (p Proposal) Delta() int64 {
	return p.NewBudgetMicros - p.OldBudgetMicros
}
