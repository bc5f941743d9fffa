package purchases

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anisha0207/lushop/internal/domain/catalog"
	"github.com/anisha0207/lushop/internal/domain/customers"
	"github.com/anisha0207/lushop/internal/domain/ident"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Create records one purchase atomically: header, detail and line land
// together or not at all. Classification and the price snapshot are re-read
// inside the transaction, so the price recorded is the price at commit time
// no matter what the operator saw while picking.
func (r *Repo) Create(ctx context.Context, p CreateParams) (*Receipt, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ck, err := classifyCustomer(ctx, tx, p.CustomerID)
	if err != nil {
		return nil, err
	}

	entry, err := classifyEntry(ctx, tx, p.CatalogID)
	if err != nil {
		return nil, err
	}

	if err := CheckEligibility(ck, entry.Kind); err != nil {
		return nil, err
	}
	if err := p.Payment.Validate(entry.Kind); err != nil {
		return nil, err
	}

	purID, err := ident.Next(ctx, tx, "purchase", "pur_id")
	if err != nil {
		return nil, err
	}

	// total stays 0; the customer's running expense is maintained by the
	// line-insert triggers, not here.
	if _, err = tx.Exec(ctx, `
		INSERT INTO purchase (pur_id, purch_date, total, customer_id)
		VALUES ($1, now(), 0, $2)
	`, purID, p.CustomerID); err != nil {
		return nil, err
	}

	switch entry.Kind {
	case catalog.KindItem:
		if _, err = tx.Exec(ctx, `
			INSERT INTO item_purchase (pur_id, cc_id, install_id) VALUES ($1,$2,$3)
		`, purID, p.Payment.CreditCardID, p.Payment.InstallmentID); err != nil {
			return nil, err
		}
		if _, err = tx.Exec(ctx, `
			INSERT INTO item_contains (pur_id, catalog_id, quantity, price_at_purchase)
			VALUES ($1,$2,$3,$4)
		`, purID, p.CatalogID, p.Quantity, entry.Price); err != nil {
			return nil, err
		}
	case catalog.KindService:
		if _, err = tx.Exec(ctx, `
			INSERT INTO service_purchase (pur_id, bank_id) VALUES ($1,$2)
		`, purID, p.Payment.BankAccountID); err != nil {
			return nil, err
		}
		if _, err = tx.Exec(ctx, `
			INSERT INTO service_contains (pur_id, catalog_id, quantity, price_at_purchase)
			VALUES ($1,$2,$3,$4)
		`, purID, p.CatalogID, p.Quantity, entry.Price); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &Receipt{
		PurchaseID:  purID,
		CustomerID:  p.CustomerID,
		Description: entry.Description,
		Kind:        entry.Kind,
		Quantity:    p.Quantity,
		UnitPrice:   entry.Price,
	}, nil
}

func classifyCustomer(ctx context.Context, tx pgx.Tx, id int64) (customers.Kind, error) {
	row := tx.QueryRow(ctx, `
		SELECT CASE WHEN i.customer_id IS NOT NULL THEN 'individual'
		            WHEN b.customer_id IS NOT NULL THEN 'business'
		       END
		FROM customer c
		LEFT JOIN individual i ON i.customer_id = c.customer_id
		LEFT JOIN business b ON b.customer_id = c.customer_id
		WHERE c.customer_id = $1
	`, id)
	var kind *string
	if err := row.Scan(&kind); err != nil {
		if err == pgx.ErrNoRows {
			return "", ErrCustomerNotFound
		}
		return "", err
	}
	if kind == nil {
		return "", ErrCustomerNotFound
	}
	return customers.Kind(*kind), nil
}

type txEntry struct {
	Kind        catalog.Kind
	Price       float64
	Description string
}

func classifyEntry(ctx context.Context, tx pgx.Tx, id int64) (*txEntry, error) {
	row := tx.QueryRow(ctx, `
		SELECT CASE WHEN i.catalog_id IS NOT NULL THEN 'item'
		            WHEN s.catalog_id IS NOT NULL THEN 'service'
		       END,
		       c.price, c.description
		FROM catalog c
		LEFT JOIN item i ON i.catalog_id = c.catalog_id
		LEFT JOIN service s ON s.catalog_id = c.catalog_id
		WHERE c.catalog_id = $1
	`, id)
	var kind *string
	var e txEntry
	if err := row.Scan(&kind, &e.Price, &e.Description); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}
	if kind == nil {
		return nil, ErrCatalogNotFound
	}
	e.Kind = catalog.Kind(*kind)
	return &e, nil
}

// PerDayReport counts purchase headers per calendar date, oldest first.
func (r *Repo) PerDayReport(ctx context.Context) ([]PerDayRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT purch_date::date AS day, COUNT(*)
		FROM purchase
		GROUP BY day
		ORDER BY day
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PerDayRow
	for rows.Next() {
		var d PerDayRow
		if err := rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
