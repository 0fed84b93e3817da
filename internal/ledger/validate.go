package ledger

import "github.com/google/uuid"

// Creates validate the full schema; updates validate only the fields
// actually supplied. Both return a field-keyed ValidationError with a
// single message per field and no partial success.

func validateCreate(in CreateInput) *ValidationError {
	fields := map[string]string{}

	if in.Amount == nil {
		fields["amount"] = "amount is required"
	}
	if in.Date == nil {
		fields["date"] = "date is required"
	} else if in.Date.IsZero() {
		fields["date"] = "date must be a valid calendar date"
	}
	checkRef(fields, "account_id", in.AccountID)
	checkRef(fields, "budget_category_id", in.BudgetCategoryID)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateUpdate(in UpdateInput) *ValidationError {
	fields := map[string]string{}

	if in.Date != nil && in.Date.IsZero() {
		fields["date"] = "date must be a valid calendar date"
	}
	checkRef(fields, "account_id", in.AccountID)
	checkRef(fields, "budget_category_id", in.BudgetCategoryID)

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validateDeleteIDs(ids []string) *ValidationError {
	if len(ids) == 0 {
		// A caller asking to delete nothing is presumed to be a client
		// bug, unlike an empty update which is a legitimate no-op.
		return &ValidationError{Fields: map[string]string{
			"ids": "at least one transaction id is required",
		}}
	}
	for _, id := range ids {
		if uuid.Validate(id) != nil {
			return &ValidationError{Fields: map[string]string{
				"ids": "ids must be valid transaction identifiers",
			}}
		}
	}
	return nil
}

// checkRef validates an optional foreign-key reference. Empty strings
// pass: they mean "clear the association" and are normalized to NULL
// before reaching the store.
func checkRef(fields map[string]string, name string, ref *string) {
	if ref == nil || *ref == "" {
		return
	}
	if uuid.Validate(*ref) != nil {
		fields[name] = name + " must be a valid identifier"
	}
}
