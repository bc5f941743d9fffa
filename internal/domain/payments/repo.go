package payments

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anisha0207/lushop/internal/domain/ident"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) ListCreditCards(ctx context.Context, customerID int64) ([]CreditCard, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT card_id, card_num, exp_month, exp_year
		FROM credit_card WHERE customer_id = $1
		ORDER BY card_id
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []CreditCard
	for rows.Next() {
		c := CreditCard{CustomerID: customerID}
		if err := rows.Scan(&c.ID, &c.Number, &c.ExpMonth, &c.ExpYear); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddCreditCard stores a card for a customer. The security code column is
// always written NULL; the number is stored as typed, no format checks.
func (r *Repo) AddCreditCard(ctx context.Context, customerID int64, number string, expMonth, expYear int) (int64, error) {
	id, err := ident.Next(ctx, r.pool, "credit_card", "card_id")
	if err != nil {
		return 0, err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO credit_card (card_id, card_num, exp_month, exp_year, sec_code, customer_id)
		VALUES ($1,$2,$3,$4,NULL,$5)
	`, id, number, expMonth, expYear, customerID)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) ListBankAccounts(ctx context.Context, customerID int64) ([]BankAccount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT bank_id, route_num, acc_num
		FROM bank_acc WHERE customer_id = $1
		ORDER BY bank_id
	`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []BankAccount
	for rows.Next() {
		b := BankAccount{CustomerID: customerID}
		if err := rows.Scan(&b.ID, &b.RoutingNumber, &b.AccountNumber); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) AddBankAccount(ctx context.Context, customerID int64, routing, account string) (int64, error) {
	id, err := ident.Next(ctx, r.pool, "bank_acc", "bank_id")
	if err != nil {
		return 0, err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO bank_acc (bank_id, route_num, acc_num, customer_id)
		VALUES ($1,$2,$3,$4)
	`, id, routing, account, customerID)
	if err != nil {
		return 0, err
	}
	return id, nil
}
