package ident

import (
	"context"
	"fmt"
	"regexp"

	"github.com/jackc/pgx/v5"
)

// Querier is the slice of pgx shared by *pgxpool.Pool and pgx.Tx, so ids can
// be allocated either standalone or inside a transaction.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var identPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Next allocates the next primary key for a table as MAX(pk)+1, or 1 for an
// empty table. Keys are assigned by the application rather than a sequence,
// which is only safe while a single session writes at a time.
func Next(ctx context.Context, q Querier, table, pk string) (int64, error) {
	if !identPattern.MatchString(table) || !identPattern.MatchString(pk) {
		return 0, fmt.Errorf("bad identifier %q.%q", table, pk)
	}

	var id int64
	sql := fmt.Sprintf(`SELECT COALESCE(MAX(%s), 0) + 1 FROM %s`, pk, table)
	if err := q.QueryRow(ctx, sql).Scan(&id); err != nil {
		return 0, fmt.Errorf("next id for %s: %w", table, err)
	}
	return id, nil
}
