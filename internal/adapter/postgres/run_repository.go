package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// db is the slice of pgxpool.Pool the repository uses.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// RunRepository implements port.RunRepository using pgxpool for PostgreSQL.
type RunRepository struct {
	pool db
}

// NewRunRepository returns a new repository instance.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

var _ port.RunRepository = (*RunRepository)(nil)

// UpsertCampaigns stores the merged view keyed by (platform, external_id)
// and records today's spend for each campaign. The whole batch runs in one
// transaction so a cancelled aggregation never leaves a half-updated view.
// The returned ids feed optimization_runs foreign keys, so a failed commit
// must surface as an error rather than hand out ids from a rolled-back
// transaction.
func (r *RunRepository) UpsertCampaigns(ctx context.Context, items []domain.CampaignMetrics) ([]domain.CampaignMetrics, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	out, err := upsertCampaignsTx(ctx, tx, items)
	if err != nil {
		_ = tx.Rollback(ctx)
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit merged view: %w", err)
	}
	return out, nil
}

func upsertCampaignsTx(ctx context.Context, tx pgx.Tx, items []domain.CampaignMetrics) ([]domain.CampaignMetrics, error) {
	out := make([]domain.CampaignMetrics, len(items))
	for i, item := range items {
		c := item.Campaign
		err := tx.QueryRow(ctx, `INSERT INTO campaigns
    (platform, external_id, name, status, budget_micros, daily_budget_micros, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,now(),now())
ON CONFLICT (platform, external_id) DO UPDATE SET
    name = EXCLUDED.name,
    status = EXCLUDED.status,
    budget_micros = EXCLUDED.budget_micros,
    daily_budget_micros = EXCLUDED.daily_budget_micros,
    updated_at = now()
RETURNING id`,
			c.Platform, c.ExternalID, c.Name, c.Status, c.BudgetMicros, c.DailyBudgetMicros).Scan(&c.ID)
		if err != nil {
			return nil, err
		}
		_, err = tx.Exec(ctx, `INSERT INTO campaign_spend (campaign_id, day, cost_micros)
VALUES ($1, current_date, $2)
ON CONFLICT (campaign_id, day) DO UPDATE SET cost_micros = EXCLUDED.cost_micros`,
			c.ID, item.Metrics.CostMicros)
		if err != nil {
			return nil, err
		}
		out[i] = domain.CampaignMetrics{Campaign: c, Metrics: item.Metrics}
	}
	return out, nil
}

// CreateRun appends one immutable audit row. A single INSERT keeps the
// write atomic per record.
func (r *RunRepository) CreateRun(ctx context.Context, run domain.OptimizationRun) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO optimization_runs
    (id, campaign_id, old_budget_micros, new_budget_micros, reason, outcome, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		run.ID, run.CampaignID, run.OldBudgetMicros, run.NewBudgetMicros, run.Reason, run.Outcome, run.CreatedAt)
	return err
}

// ListRuns returns the newest runs first, optionally filtered by campaign.
func (r *RunRepository) ListRuns(ctx context.Context, campaignID *int64, limit int) ([]domain.OptimizationRun, error) {
	if limit <= 0 {
		limit = 100
	}
	args := []interface{}{limit}
	whereCampaign := ""
	if campaignID != nil {
		whereCampaign = "WHERE campaign_id = $2"
		args = append(args, *campaignID)
	}
	query := fmt.Sprintf(`SELECT id, campaign_id, old_budget_micros, new_budget_micros, reason, outcome, created_at
FROM optimization_runs %s ORDER BY created_at DESC LIMIT $1`, whereCampaign)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OptimizationRun, error) {
		var run domain.OptimizationRun
		err := row.Scan(&run.ID, &run.CampaignID, &run.OldBudgetMicros, &run.NewBudgetMicros,
			&run.Reason, &run.Outcome, &run.CreatedAt)
		return run, err
	})
}

// TrailingAvgSpendMicros averages daily spend per campaign over the past
// days. Campaigns without any history are absent from the result.
func (r *RunRepository) TrailingAvgSpendMicros(ctx context.Context, days int) (map[int64]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT campaign_id, COALESCE(avg(cost_micros), 0)::bigint
FROM campaign_spend
WHERE day >= current_date - $1::int
GROUP BY campaign_id`, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	avg := make(map[int64]int64)
	for rows.Next() {
		var id, spend int64
		if err = rows.Scan(&id, &spend); err != nil {
			return nil, err
		}
		avg[id] = spend
	}
	return avg, rows.Err()
}

// AppliedSince returns campaigns with an applied run after the given time.
func (r *RunRepository) AppliedSince(ctx context.Context, since time.Time) (map[int64]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT campaign_id FROM optimization_runs
WHERE outcome = 'applied' AND created_at > $1`, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[int64]bool)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		applied[id] = true
	}
	return applied, rows.Err()
}
