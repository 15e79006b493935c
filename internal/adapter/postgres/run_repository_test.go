package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
)

// fakeTx stubs the few pgx.Tx methods the upsert path touches; anything
// else panics through the embedded nil interface.
type fakeTx struct {
	pgx.Tx
	nextID     int64
	execErr    error
	commitErr  error
	committed  bool
	rolledBack bool
}

type idRow struct {
	id  int64
	err error
}

func (r idRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

func (t *fakeTx) QueryRow(context.Context, string, ...any) pgx.Row {
	t.nextID++
	return idRow{id: t.nextID}
}

func (t *fakeTx) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, t.execErr
}

func (t *fakeTx) Commit(context.Context) error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback(context.Context) error {
	t.rolledBack = true
	return nil
}

type fakePool struct {
	tx       *fakeTx
	beginErr error
}

func (p *fakePool) Begin(context.Context) (pgx.Tx, error) { return p.tx, p.beginErr }

func (p *fakePool) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	panic("unexpected pool Exec")
}

func (p *fakePool) Query(context.Context, string, ...any) (pgx.Rows, error) {
	panic("unexpected pool Query")
}

func upsertInput(n int) []domain.CampaignMetrics {
	items := make([]domain.CampaignMetrics, n)
	for i := range items {
		items[i] = domain.CampaignMetrics{
			Campaign: domain.Campaign{
				Platform:          domain.PlatformGoogle,
				ExternalID:        "g-001",
				Status:            domain.StatusEnabled,
				DailyBudgetMicros: 100_000_000,
			},
		}
	}
	return items
}

func TestUpsertCampaignsAssignsIDs(t *testing.T) {
	tx := &fakeTx{}
	repo := &RunRepository{pool: &fakePool{tx: tx}}

	out, err := repo.UpsertCampaigns(context.Background(), upsertInput(2))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].Campaign.ID)
	assert.Equal(t, int64(2), out[1].Campaign.ID)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

// TestUpsertCampaignsCommitFailure ensures a failed commit surfaces as an
// error instead of handing out ids from a rolled-back transaction; those
// ids would otherwise feed optimization_runs foreign keys.
func TestUpsertCampaignsCommitFailure(t *testing.T) {
	boom := errors.New("connection reset during commit")
	tx := &fakeTx{commitErr: boom}
	repo := &RunRepository{pool: &fakePool{tx: tx}}

	out, err := repo.UpsertCampaigns(context.Background(), upsertInput(1))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "commit merged view")
	assert.Nil(t, out)
}

func TestUpsertCampaignsRollsBackOnError(t *testing.T) {
	boom := errors.New("spend insert failed")
	tx := &fakeTx{execErr: boom}
	repo := &RunRepository{pool: &fakePool{tx: tx}}

	out, err := repo.UpsertCampaigns(context.Background(), upsertInput(1))
	require.ErrorIs(t, err, boom)
	assert.Nil(t, out)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestUpsertCampaignsBeginFailure(t *testing.T) {
	boom := errors.New("pool exhausted")
	repo := &RunRepository{pool: &fakePool{beginErr: boom}}

	_, err := repo.UpsertCampaigns(context.Background(), upsertInput(1))
	assert.ErrorIs(t, err, boom)
}
