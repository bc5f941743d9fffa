package ident

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// fakeQuerier replays what the database would answer for COALESCE(MAX..)+1.
type fakeQuerier struct {
	max int64
	sql string
}

type fakeRow struct{ v int64 }

func (r fakeRow) Scan(dest ...any) error {
	*dest[0].(*int64) = r.v
	return nil
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	q.sql = sql
	return fakeRow{v: q.max + 1}
}

func TestNextEmptyTable(t *testing.T) {
	q := &fakeQuerier{max: 0}
	id, err := Next(context.Background(), q, "purchase", "pur_id")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)
	require.Equal(t, `SELECT COALESCE(MAX(pur_id), 0) + 1 FROM purchase`, q.sql)
}

func TestNextAfterExisting(t *testing.T) {
	q := &fakeQuerier{max: 41}
	id, err := Next(context.Background(), q, "credit_card", "card_id")
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
}

func TestNextRejectsBadIdentifiers(t *testing.T) {
	q := &fakeQuerier{}
	for _, bad := range []string{"", "1abc", "purchase; drop table x", "Pur-Id"} {
		_, err := Next(context.Background(), q, bad, "id")
		require.Error(t, err, bad)
		_, err = Next(context.Background(), q, "purchase", bad)
		require.Error(t, err, bad)
	}
}
