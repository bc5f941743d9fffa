package installments

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anisha0207/lushop/internal/domain/ident"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) List(ctx context.Context) ([]Plan, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT install_id, terms, int_rate, manager_id FROM installment ORDER BY install_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.TermMonths, &p.InterestRate, &p.ManagerID); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Add(ctx context.Context, termMonths int64, interestRate float64, managerID int64) (int64, error) {
	id, err := ident.Next(ctx, r.pool, "installment", "install_id")
	if err != nil {
		return 0, err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO installment (install_id, terms, int_rate, manager_id)
		VALUES ($1,$2,$3,$4)
	`, id, termMonths, interestRate, managerID)
	if err != nil {
		return 0, err
	}
	return id, nil
}
