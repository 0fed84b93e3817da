// Package ledger implements the transaction ledger: the durable store,
// its cache layer, the mutation service that orchestrates them, and the
// ordering engine shared with the client-side mirror.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jeffrey-cordero/capital/internal/date"
)

// Transaction is a single ledger entry. Amounts are exact decimals
// (sign distinguishes income from expense) and Date carries day-level
// granularity only. AccountID and BudgetCategoryID reference entities
// owned by other subsystems; nil means "no association" and an empty
// string is never stored.
type Transaction struct {
	ID               string          `json:"id"`
	OwnerID          string          `json:"-"`
	Amount           decimal.Decimal `json:"amount"`
	Description      *string         `json:"description"`
	Date             date.Date       `json:"date"`
	AccountID        *string         `json:"account_id"`
	BudgetCategoryID *string         `json:"budget_category_id"`
	Seq              int64           `json:"-"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateInput carries the fields for a new transaction. Required fields
// are pointers so validation can distinguish "absent" from a supplied
// zero value and report each missing field by name.
type CreateInput struct {
	Amount           *decimal.Decimal `json:"amount"`
	Description      *string          `json:"description"`
	Date             *date.Date       `json:"date"`
	AccountID        *string          `json:"account_id"`
	BudgetCategoryID *string          `json:"budget_category_id"`
}

// UpdateInput is a sparse delta: nil fields were not supplied and must
// not be touched. An empty-string AccountID or BudgetCategoryID clears
// the association (normalized to NULL by the patch builder).
type UpdateInput struct {
	Amount           *decimal.Decimal `json:"amount"`
	Description      *string          `json:"description"`
	Date             *date.Date       `json:"date"`
	AccountID        *string          `json:"account_id"`
	BudgetCategoryID *string          `json:"budget_category_id"`
}
