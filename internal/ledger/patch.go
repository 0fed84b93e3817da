package ledger

// Field is one (column, value) pair of a partial update. Value is
// passed through to the store as a bind parameter; a nil Value writes
// SQL NULL.
type Field struct {
	Column string
	Value  any
}

// BuildPatch turns a sparse UpdateInput into the ordered field list a
// dynamic UPDATE applies. Absent (nil) fields are skipped entirely.
// Empty-string account or budget category references are normalized to
// NULL rather than stored as empty strings. Output order follows the
// column whitelist, so the generated statement is stable for a given
// input shape.
func BuildPatch(in UpdateInput) []Field {
	patch := make([]Field, 0, 5)

	if in.Amount != nil {
		patch = append(patch, Field{Column: "amount", Value: *in.Amount})
	}
	if in.Description != nil {
		patch = append(patch, Field{Column: "description", Value: *in.Description})
	}
	if in.Date != nil {
		patch = append(patch, Field{Column: "date", Value: *in.Date})
	}
	if in.AccountID != nil {
		patch = append(patch, Field{Column: "account_id", Value: nullableRef(*in.AccountID)})
	}
	if in.BudgetCategoryID != nil {
		patch = append(patch, Field{Column: "budget_category_id", Value: nullableRef(*in.BudgetCategoryID)})
	}

	return patch
}

// nullableRef maps an empty reference to NULL.
func nullableRef(id string) any {
	if id == "" {
		return nil
	}
	return id
}
