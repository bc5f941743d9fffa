package catalog_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/anisha0207/lushop/internal/domain/catalog"
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
	return pool
}

func seed(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	ctx := context.Background()
	stmts := []string{
		`INSERT INTO manager (manager_id, name) VALUES (1, 'M. Roco')`,
		`INSERT INTO catalog (catalog_id, vendor, description, price, manager_id)
		 VALUES (101, 'JBL', 'Wireless Headphones', 99.99, 1),
		        (102, 'Apple', 'iPhone Screen Repair', 200.00, 1)`,
		`INSERT INTO item (catalog_id) VALUES (101)`,
		`INSERT INTO service (catalog_id, duration) VALUES (102, 14)`,
	}
	for _, s := range stmts {
		_, err := pool.Exec(ctx, s)
		require.NoError(t, err)
	}
}

func TestSearch(t *testing.T) {
	pool := setupPool(t)
	seed(t, pool)
	ctx := context.Background()
	repo := catalog.NewRepo(pool)

	t.Run("no matches is an empty result, not an error", func(t *testing.T) {
		matches, err := repo.Search(ctx, "zzz-nope")
		require.NoError(t, err)
		require.Empty(t, matches)
	})

	t.Run("matches case-insensitively inside the description", func(t *testing.T) {
		matches, err := repo.Search(ctx, "headphones")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		require.Equal(t, int64(101), matches[0].ID)
		require.Equal(t, "Wireless Headphones", matches[0].Description)
	})

	t.Run("spans both subtypes", func(t *testing.T) {
		matches, err := repo.Search(ctx, "i")
		require.NoError(t, err)
		require.Len(t, matches, 2)
	})
}
