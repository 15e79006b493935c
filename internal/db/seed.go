package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo campaigns and a week of spend history. Development
// convenience only; production data comes from aggregation.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	platforms := []string{"google", "meta"}
	for _, platform := range platforms {
		for i := 1; i <= 5; i++ {
			externalID := fmt.Sprintf("%s-%04d", platform, i)
			name := fmt.Sprintf("Demo %s campaign %d", platform, i)
			dailyBudget := int64(50_000_000 + r.Intn(10)*10_000_000) // 50-140 units
			totalBudget := dailyBudget * 30
			var id int64
			err := db.QueryRow(ctx, `INSERT INTO campaigns
    (platform, external_id, name, status, budget_micros, daily_budget_micros, created_at, updated_at)
VALUES ($1,$2,$3,'ENABLED',$4,$5,now(),now())
ON CONFLICT (platform, external_id) DO UPDATE SET updated_at = now()
RETURNING id`,
				platform, externalID, name, totalBudget, dailyBudget).Scan(&id)
			if err != nil {
				return err
			}
			// a week of plausible spend around 80-105% of daily budget
			for d := 1; d <= 7; d++ {
				spend := dailyBudget * int64(80+r.Intn(25)) / 100
				_, err = db.Exec(ctx, `INSERT INTO campaign_spend (campaign_id, day, cost_micros)
VALUES ($1, current_date - $2::int, $3)
ON CONFLICT (campaign_id, day) DO NOTHING`, id, d, spend)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}
