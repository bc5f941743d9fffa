package purchases_test

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
	"github.com/anisha0207/lushop/internal/domain/purchases"
)

// These tests need a real Postgres; point LUSHOP_TEST_DSN at a scratch
// database to run them. Migrations are applied and the touched tables wiped.
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
		`INSERT INTO customer (customer_id, name, tot_expense) VALUES (5, 'Ada Person', 0), (7, 'Bolt LLC', 0)`,
		`INSERT INTO individual (customer_id) VALUES (5)`,
		`INSERT INTO business (customer_id) VALUES (7)`,
		`INSERT INTO catalog (catalog_id, vendor, description, price, manager_id)
		 VALUES (101, 'JBL', 'Wireless Headphones', 99.99, 1),
		        (102, 'Apple', 'iPhone Screen Repair', 200.00, 1)`,
		`INSERT INTO item (catalog_id) VALUES (101)`,
		`INSERT INTO service (catalog_id, duration) VALUES (102, 14)`,
		`INSERT INTO credit_card (card_id, card_num, exp_month, exp_year, sec_code, customer_id)
		 VALUES (1, '4111111111111111', 12, 2028, NULL, 5)`,
		`INSERT INTO bank_acc (bank_id, route_num, acc_num, customer_id)
		 VALUES (3, '021000021', '8812734', 7)`,
		`INSERT INTO installment (install_id, terms, int_rate, manager_id) VALUES (1, 12, 4.5, 1)`,
	}
	for _, s := range stmts {
		_, err := pool.Exec(ctx, s)
		require.NoError(t, err)
	}
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int64 {
	t.Helper()
	var n int64
	err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM `+table).Scan(&n)
	require.NoError(t, err)
	return n
}

func TestCreateRejectsIneligiblePairs(t *testing.T) {
	pool := setupPool(t)
	seed(t, pool)
	ctx := context.Background()
	repo := purchases.NewRepo(pool)

	bank := int64(3)
	card := int64(1)

	t.Run("individual cannot buy a service", func(t *testing.T) {
		before := countRows(t, pool, "purchase")
		_, err := repo.Create(ctx, purchases.CreateParams{
			CustomerID: 5, CatalogID: 102, Quantity: 1,
			Payment: purchases.Payment{BankAccountID: &bank},
		})
		require.ErrorIs(t, err, purchases.ErrIndividualItemsOnly)
		require.Equal(t, before, countRows(t, pool, "purchase"))
		require.Equal(t, int64(0), countRows(t, pool, "service_purchase"))
	})

	t.Run("business cannot buy an item", func(t *testing.T) {
		before := countRows(t, pool, "purchase")
		_, err := repo.Create(ctx, purchases.CreateParams{
			CustomerID: 7, CatalogID: 101, Quantity: 1,
			Payment: purchases.Payment{CreditCardID: &card},
		})
		require.ErrorIs(t, err, purchases.ErrBusinessServicesOnly)
		require.Equal(t, before, countRows(t, pool, "purchase"))
		require.Equal(t, int64(0), countRows(t, pool, "item_purchase"))
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := repo.Create(ctx, purchases.CreateParams{
			CustomerID: 999, CatalogID: 101, Quantity: 1,
			Payment: purchases.Payment{CreditCardID: &card},
		})
		require.ErrorIs(t, err, purchases.ErrCustomerNotFound)
	})

	t.Run("unknown catalog id", func(t *testing.T) {
		_, err := repo.Create(ctx, purchases.CreateParams{
			CustomerID: 5, CatalogID: 999, Quantity: 1,
			Payment: purchases.Payment{CreditCardID: &card},
		})
		require.ErrorIs(t, err, purchases.ErrCatalogNotFound)
	})
}

func TestCreateServicePurchase(t *testing.T) {
	pool := setupPool(t)
	seed(t, pool)
	ctx := context.Background()
	repo := purchases.NewRepo(pool)

	bank := int64(3)
	rcpt, err := repo.Create(ctx, purchases.CreateParams{
		CustomerID: 7, CatalogID: 102, Quantity: 1,
		Payment: purchases.Payment{BankAccountID: &bank},
	})
	require.NoError(t, err)
	require.Equal(t, catalog.KindService, rcpt.Kind)
	require.Equal(t, 200.00, rcpt.UnitPrice)

	require.Equal(t, int64(1), countRows(t, pool, "purchase"))
	require.Equal(t, int64(1), countRows(t, pool, "service_purchase"))
	require.Equal(t, int64(1), countRows(t, pool, "service_contains"))

	var bankID, qty int64
	var price float64
	err = pool.QueryRow(ctx, `
		SELECT sp.bank_id, sc.quantity, sc.price_at_purchase
		FROM service_purchase sp
		JOIN service_contains sc ON sc.pur_id = sp.pur_id
		WHERE sp.pur_id = $1
	`, rcpt.PurchaseID).Scan(&bankID, &qty, &price)
	require.NoError(t, err)
	require.Equal(t, int64(3), bankID)
	require.Equal(t, int64(1), qty)
	require.Equal(t, 200.00, price)

	// Snapshot survives a later price change.
	crepo := catalog.NewRepo(pool)
	require.NoError(t, crepo.UpdatePrice(ctx, 102, 250.00))
	err = pool.QueryRow(ctx, `
		SELECT price_at_purchase FROM service_contains WHERE pur_id = $1
	`, rcpt.PurchaseID).Scan(&price)
	require.NoError(t, err)
	require.Equal(t, 200.00, price)

	// Triggers keep the running total in step.
	var total float64
	err = pool.QueryRow(ctx, `SELECT tot_expense FROM customer WHERE customer_id = 7`).Scan(&total)
	require.NoError(t, err)
	require.Equal(t, 200.00, total)
}

func TestCreateItemPurchaseWithInstallment(t *testing.T) {
	pool := setupPool(t)
	seed(t, pool)
	ctx := context.Background()
	repo := purchases.NewRepo(pool)

	plan := int64(1)
	rcpt, err := repo.Create(ctx, purchases.CreateParams{
		CustomerID: 5, CatalogID: 101, Quantity: 2,
		Payment: purchases.Payment{InstallmentID: &plan},
	})
	require.NoError(t, err)

	var ccID, installID *int64
	err = pool.QueryRow(ctx, `
		SELECT cc_id, install_id FROM item_purchase WHERE pur_id = $1
	`, rcpt.PurchaseID).Scan(&ccID, &installID)
	require.NoError(t, err)
	require.Nil(t, ccID)
	require.NotNil(t, installID)
	require.Equal(t, int64(1), *installID)
}

func TestCreateItemPurchaseWithCreditCard(t *testing.T) {
	pool := setupPool(t)
	seed(t, pool)
	ctx := context.Background()
	repo := purchases.NewRepo(pool)

	card := int64(1)
	rcpt, err := repo.Create(ctx, purchases.CreateParams{
		CustomerID: 5, CatalogID: 101, Quantity: 1,
		Payment: purchases.Payment{CreditCardID: &card},
	})
	require.NoError(t, err)
	require.Equal(t, catalog.KindItem, rcpt.Kind)

	// The detail row references the card and nothing else.
	var ccID, installID *int64
	err = pool.QueryRow(ctx, `
		SELECT cc_id, install_id FROM item_purchase WHERE pur_id = $1
	`, rcpt.PurchaseID).Scan(&ccID, &installID)
	require.NoError(t, err)
	require.NotNil(t, ccID)
	require.Equal(t, int64(1), *ccID)
	require.Nil(t, installID)

	var qty int64
	var price float64
	err = pool.QueryRow(ctx, `
		SELECT quantity, price_at_purchase FROM item_contains WHERE pur_id = $1
	`, rcpt.PurchaseID).Scan(&qty, &price)
	require.NoError(t, err)
	require.Equal(t, int64(1), qty)
	require.Equal(t, 99.99, price)
}
