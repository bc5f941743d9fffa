package customers

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Classify resolves a customer id to its row and subtype in one query.
// Returns (nil, nil) when the id does not exist in either subtype.
func (r *Repo) Classify(ctx context.Context, id int64) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.customer_id, c.name, c.tot_expense,
		       CASE WHEN i.customer_id IS NOT NULL THEN 'individual'
		            WHEN b.customer_id IS NOT NULL THEN 'business'
		       END AS kind
		FROM customer c
		LEFT JOIN individual i ON i.customer_id = c.customer_id
		LEFT JOIN business b ON b.customer_id = c.customer_id
		WHERE c.customer_id = $1
	`, id)

	var c Customer
	var kind *string
	if err := row.Scan(&c.ID, &c.Name, &c.TotalExpense, &kind); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if kind == nil {
		// In the customer table but in neither subtype; treat as missing.
		return nil, nil
	}
	c.Kind = Kind(*kind)
	return &c, nil
}

// Get fetches name and running total without subtype resolution, for the
// detail screen. Returns (nil, nil) when the id is unknown.
func (r *Repo) Get(ctx context.Context, id int64) (*Customer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT customer_id, name, tot_expense FROM customer WHERE customer_id = $1
	`, id)
	var c Customer
	if err := row.Scan(&c.ID, &c.Name, &c.TotalExpense); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *Repo) listByKind(ctx context.Context, subtype string) ([]Customer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.customer_id, c.name, c.tot_expense
		FROM customer c JOIN `+subtype+` s ON s.customer_id = c.customer_id
		ORDER BY c.customer_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Customer
	for rows.Next() {
		c := Customer{Kind: Kind(subtype)}
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalExpense); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) ListIndividuals(ctx context.Context) ([]Customer, error) {
	return r.listByKind(ctx, "individual")
}

func (r *Repo) ListBusinesses(ctx context.Context) ([]Customer, error) {
	return r.listByKind(ctx, "business")
}

// History returns every purchased line for a customer, items and services
// combined. Order follows the union; the caller prints it as-is.
func (r *Repo) History(ctx context.Context, id int64) ([]HistoryEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.purch_date, c.description, ic.quantity, ic.price_at_purchase
		FROM purchase p
		JOIN item_purchase ip ON ip.pur_id = p.pur_id
		JOIN item_contains ic ON ic.pur_id = ip.pur_id
		JOIN catalog c ON c.catalog_id = ic.catalog_id
		WHERE p.customer_id = $1
		UNION ALL
		SELECT p.purch_date, c.description, sc.quantity, sc.price_at_purchase
		FROM purchase p
		JOIN service_purchase sp ON sp.pur_id = p.pur_id
		JOIN service_contains sc ON sc.pur_id = sp.pur_id
		JOIN catalog c ON c.catalog_id = sc.catalog_id
		WHERE p.customer_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []HistoryEntry
	for rows.Next() {
		var h HistoryEntry
		if err := rows.Scan(&h.Date, &h.Description, &h.Quantity, &h.PriceAtPurchase); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// SpendingReport lists all customers by descending running total. The total
// comes straight from tot_expense, which the line-insert triggers maintain.
func (r *Repo) SpendingReport(ctx context.Context) ([]SpendingRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, tot_expense FROM customer ORDER BY tot_expense DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SpendingRow
	for rows.Next() {
		var s SpendingRow
		if err := rows.Scan(&s.Name, &s.TotalExpense); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
