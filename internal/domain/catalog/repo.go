package catalog

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anisha0207/lushop/internal/domain/ident"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// Classify resolves a catalog id to its row and subtype in one query.
// Returns (nil, nil) when the id is unknown.
func (r *Repo) Classify(ctx context.Context, id int64) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.catalog_id, c.vendor, c.description, c.price, c.manager_id,
		       CASE WHEN i.catalog_id IS NOT NULL THEN 'item'
		            WHEN s.catalog_id IS NOT NULL THEN 'service'
		       END AS kind,
		       COALESCE(s.duration, 0)
		FROM catalog c
		LEFT JOIN item i ON i.catalog_id = c.catalog_id
		LEFT JOIN service s ON s.catalog_id = c.catalog_id
		WHERE c.catalog_id = $1
	`, id)

	var e Entry
	var kind *string
	if err := row.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price, &e.ManagerID, &kind, &e.DurationDays); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if kind == nil {
		return nil, nil
	}
	e.Kind = Kind(*kind)
	return &e, nil
}

func (r *Repo) ListItems(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.catalog_id, c.vendor, c.description, c.price
		FROM catalog c JOIN item i ON i.catalog_id = c.catalog_id
		ORDER BY c.catalog_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		e := Entry{Kind: KindItem}
		if err := rows.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) ListServices(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.catalog_id, c.vendor, c.description, c.price, s.duration
		FROM catalog c JOIN service s ON s.catalog_id = c.catalog_id
		ORDER BY c.catalog_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		e := Entry{Kind: KindService}
		if err := rows.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price, &e.DurationDays); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListAll is the preview shown before a purchase: every entry, both subtypes.
func (r *Repo) ListAll(ctx context.Context) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT catalog_id, vendor, description, price
		FROM catalog ORDER BY catalog_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Search matches a keyword case-insensitively anywhere in the description,
// across both subtypes. Zero matches is a valid, empty result.
func (r *Repo) Search(ctx context.Context, keyword string) ([]Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT catalog_id, vendor, description, price
		FROM catalog
		WHERE LOWER(description) LIKE '%' || LOWER($1) || '%'
		ORDER BY catalog_id
	`, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// AddItem inserts the catalog row and its item subtype row, allocating the id
// inside one transaction.
func (r *Repo) AddItem(ctx context.Context, vendor, description string, price float64, managerID int64) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := ident.Next(ctx, tx, "catalog", "catalog_id")
	if err != nil {
		return 0, err
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO catalog (catalog_id, vendor, description, price, manager_id)
		VALUES ($1,$2,$3,$4,$5)
	`, id, vendor, description, price, managerID); err != nil {
		return 0, err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO item (catalog_id) VALUES ($1)`, id); err != nil {
		return 0, err
	}
	return id, tx.Commit(ctx)
}

func (r *Repo) AddService(ctx context.Context, vendor, description string, price float64, durationDays, managerID int64) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := ident.Next(ctx, tx, "catalog", "catalog_id")
	if err != nil {
		return 0, err
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO catalog (catalog_id, vendor, description, price, manager_id)
		VALUES ($1,$2,$3,$4,$5)
	`, id, vendor, description, price, managerID); err != nil {
		return 0, err
	}
	if _, err = tx.Exec(ctx, `
		INSERT INTO service (catalog_id, duration) VALUES ($1,$2)
	`, id, durationDays); err != nil {
		return 0, err
	}
	return id, tx.Commit(ctx)
}

// Get fetches one catalog row without subtype resolution, for the update
// screen. Returns (nil, nil) when missing.
func (r *Repo) Get(ctx context.Context, id int64) (*Entry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT catalog_id, vendor, description, price FROM catalog WHERE catalog_id = $1
	`, id)
	var e Entry
	if err := row.Scan(&e.ID, &e.Vendor, &e.Description, &e.Price); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// UpdatePrice changes the price only; vendor and description are immutable
// through this workflow. Recorded purchase lines keep their snapshotted price.
func (r *Repo) UpdatePrice(ctx context.Context, id int64, price float64) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE catalog SET price = $2 WHERE catalog_id = $1
	`, id, price)
	return err
}

// RevenueReport sums quantity*price_at_purchase over both line tables,
// grouped by description, highest revenue first.
func (r *Repo) RevenueReport(ctx context.Context) ([]RevenueRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.description, SUM(combined.qty * combined.sold_price) AS revenue
		FROM (
			SELECT catalog_id, quantity AS qty, price_at_purchase AS sold_price FROM item_contains
			UNION ALL
			SELECT catalog_id, quantity AS qty, price_at_purchase AS sold_price FROM service_contains
		) combined
		JOIN catalog c ON c.catalog_id = combined.catalog_id
		GROUP BY c.description
		ORDER BY revenue DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RevenueRow
	for rows.Next() {
		var v RevenueRow
		if err := rows.Scan(&v.Description, &v.Revenue); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
