package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jeffrey-cordero/capital/internal/date"
)

// Repo is the Postgres adapter for the transactions table. Every query
// predicate includes owner_id, so a transaction belonging to another
// owner behaves exactly like a missing row. Input is assumed
// pre-validated by the mutation service; failures here are I/O or
// constraint failures and come back as StoreError.
type Repo struct {
	Pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{Pool: pool}
}

const txColumns = `id::text, owner_id::text, amount::text, description, date,
	       account_id::text, budget_category_id::text, seq, created_at`

// ListByOwner returns the owner's transactions ordered by date
// descending, most recently inserted first among equal dates. Amounts
// travel as numeric text and are parsed into exact decimals.
func (r *Repo) ListByOwner(ctx context.Context, ownerID string) ([]Transaction, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+txColumns+`
		 FROM transactions
		 WHERE owner_id = $1::uuid
		 ORDER BY date DESC, seq DESC`,
		ownerID,
	)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	defer rows.Close()

	out := make([]Transaction, 0, 16)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return out, nil
}

// Create inserts a full record and returns it as stored, including the
// store-assigned id and insertion sequence.
func (r *Repo) Create(ctx context.Context, ownerID string, in CreateInput) (Transaction, error) {
	row := r.Pool.QueryRow(ctx,
		`INSERT INTO transactions (owner_id, amount, description, date, account_id, budget_category_id)
		 VALUES ($1::uuid, $2::numeric, $3, $4, $5::uuid, $6::uuid)
		 RETURNING `+txColumns,
		ownerID,
		in.Amount.String(),
		in.Description,
		*in.Date,
		nullableRef(deref(in.AccountID)),
		nullableRef(deref(in.BudgetCategoryID)),
	)
	t, err := scanTransaction(row)
	if err != nil {
		return Transaction{}, &StoreError{Op: "create", Err: err}
	}
	return t, nil
}

// Update applies only the fields present in patch. It reports false,
// not an error, when no row matched (owner_id, id). An empty patch is
// a no-op success: callers may legitimately submit empty deltas.
func (r *Repo) Update(ctx context.Context, ownerID, id string, patch []Field) (bool, error) {
	if len(patch) == 0 {
		return true, nil
	}

	args := make([]any, 0, len(patch)+2)
	args = append(args, ownerID, id)
	for _, f := range patch {
		args = append(args, f.Value)
	}

	ct, err := r.Pool.Exec(ctx,
		`UPDATE transactions SET `+setClause(patch, 3)+
			` WHERE owner_id = $1::uuid AND id = $2::uuid`,
		args...,
	)
	if err != nil {
		return false, &StoreError{Op: "update", Err: err}
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteMany deletes the owner's rows matching ids in a single
// statement and returns the count actually deleted, which the caller
// uses to detect zero or partial matches. Deletion is physical.
func (r *Repo) DeleteMany(ctx context.Context, ownerID string, ids []string) (int64, error) {
	ct, err := r.Pool.Exec(ctx,
		`DELETE FROM transactions
		 WHERE owner_id = $1::uuid AND id = ANY($2::uuid[])`,
		ownerID, ids,
	)
	if err != nil {
		return 0, &StoreError{Op: "delete", Err: err}
	}
	return ct.RowsAffected(), nil
}

// setClause renders the SET list for a dynamic partial update, with
// bind parameters numbered from firstArg. Column order follows the
// patch, which the builder keeps in whitelist order, so the statement
// text is deterministic for a given input shape.
func setClause(patch []Field, firstArg int) string {
	parts := make([]string, len(patch))
	for i, f := range patch {
		parts[i] = fmt.Sprintf("%s = $%d", f.Column, firstArg+i)
	}
	return strings.Join(parts, ", ")
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (Transaction, error) {
	var (
		t          Transaction
		amountText string
		d          date.Date
	)
	if err := row.Scan(
		&t.ID,
		&t.OwnerID,
		&amountText,
		&t.Description,
		&d,
		&t.AccountID,
		&t.BudgetCategoryID,
		&t.Seq,
		&t.CreatedAt,
	); err != nil {
		return Transaction{}, err
	}
	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return Transaction{}, fmt.Errorf("parse amount %q: %w", amountText, err)
	}
	t.Amount = amount
	t.Date = d
	return t, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
