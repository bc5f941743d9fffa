package managers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) List(ctx context.Context) ([]Manager, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT manager_id, name FROM manager ORDER BY manager_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Manager
	for rows.Next() {
		var m Manager
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
