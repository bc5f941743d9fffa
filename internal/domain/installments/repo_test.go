package installments_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/anisha0207/lushop/internal/domain/installments"
)

// Needs a real Postgres; point LUSHOP_TEST_DSN at a scratch database to run.
func setupPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("LUSHOP_TEST_DSN")
	if dsn == "" {
		t.Skip("LUSHOP_TEST_DSN not set")
	}

	sqlDB, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(sqlDB, "../../../migrations"))
	require.NoError(t, sqlDB.Close())

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `
		TRUNCATE item_contains, service_contains, item_purchase, service_purchase,
		         purchase, credit_card, bank_acc, installment, item, service,
		         catalog, individual, business, customer, manager
	`)
	require.NoError(t, err)

	_, err = pool.Exec(context.Background(), `INSERT INTO manager (manager_id, name) VALUES (1, 'M. Roco')`)
	require.NoError(t, err)
	return pool
}

func TestAddAndList(t *testing.T) {
	pool := setupPool(t)
	ctx := context.Background()
	repo := installments.NewRepo(pool)

	id, err := repo.Add(ctx, 12, 4.5, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	id, err = repo.Add(ctx, 24, 6.25, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), id)

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	require.Equal(t, installments.Plan{ID: 1, TermMonths: 12, InterestRate: 4.5, ManagerID: 1}, plans[0])
	require.Equal(t, installments.Plan{ID: 2, TermMonths: 24, InterestRate: 6.25, ManagerID: 1}, plans[1])
}
