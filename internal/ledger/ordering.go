package ledger

import "slices"

// The ordering engine keeps a transaction slice sorted by date
// descending. Among transactions sharing a date the most recently
// inserted one sorts first, which matches the store's
// ORDER BY date DESC, seq DESC exactly. Both the service's in-memory
// paths and the client mirror go through these functions so the two
// sides cannot drift apart.

// Insert places tx immediately before the first element whose date is
// not after tx's date, or appends when every element is newer.
func Insert(list []Transaction, tx Transaction) []Transaction {
	for i := range list {
		if !list[i].Date.After(tx.Date) {
			return slices.Insert(list, i, tx)
		}
	}
	return append(list, tx)
}

// Reinsert merges an updated transaction back into the list. When the
// date is unchanged the element is replaced in place; when it moved,
// the element is removed and re-inserted so it lands in its new
// tie-break position. An id the list has never seen falls back to a
// plain Insert, which keeps a mirror convergent with the store even if
// it missed the original create.
func Reinsert(list []Transaction, updated Transaction) []Transaction {
	at := slices.IndexFunc(list, func(t Transaction) bool { return t.ID == updated.ID })
	if at < 0 {
		return Insert(list, updated)
	}
	if list[at].Date.Equal(updated.Date) {
		list[at] = updated
		return list
	}
	list = slices.Delete(list, at, at+1)
	return Insert(list, updated)
}

// RemoveByIDs retains, in one pass, every transaction whose id is not
// in ids. Positional removal one id at a time would invalidate the
// indices of everything behind each hit.
func RemoveByIDs(list []Transaction, ids ...string) []Transaction {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	kept := list[:0]
	for _, t := range list {
		if _, gone := drop[t.ID]; !gone {
			kept = append(kept, t)
		}
	}
	return kept
}
