package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffrey-cordero/capital/internal/date"
)

func mkTx(id, day, amount string) Transaction {
	d, err := date.Parse(day)
	if err != nil {
		panic(err)
	}
	return Transaction{
		ID:     id,
		Amount: decimal.RequireFromString(amount),
		Date:   d,
	}
}

func idsOf(list []Transaction) []string {
	out := make([]string, len(list))
	for i, t := range list {
		out[i] = t.ID
	}
	return out
}

func assertDescending(t *testing.T, list []Transaction) {
	t.Helper()
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Date.After(list[i-1].Date),
			"list out of order at %d: %s after %s", i, list[i].Date, list[i-1].Date)
	}
}

func TestInsertEmpty(t *testing.T) {
	list := Insert(nil, mkTx("a", "2024-01-05", "100"))
	assert.Equal(t, []string{"a"}, idsOf(list))
}

func TestInsertKeepsDescendingOrder(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "100"))
	list = Insert(list, mkTx("b", "2024-01-10", "-50"))
	list = Insert(list, mkTx("c", "2024-01-07", "25"))

	assert.Equal(t, []string{"b", "c", "a"}, idsOf(list))
	assertDescending(t, list)
}

func TestInsertOlderThanAllAppends(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-10", "1"))
	list = Insert(list, mkTx("b", "2023-12-31", "1"))

	assert.Equal(t, []string{"a", "b"}, idsOf(list))
}

func TestInsertTieBreakNewestFirst(t *testing.T) {
	// Inserting A then B at the same date must yield [B, A].
	var list []Transaction
	list = Insert(list, mkTx("A", "2024-01-05", "1"))
	list = Insert(list, mkTx("B", "2024-01-05", "2"))

	assert.Equal(t, []string{"B", "A"}, idsOf(list))
}

func TestReinsertSameDateReplacesInPlace(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "100"))
	list = Insert(list, mkTx("b", "2024-01-10", "-50"))

	updated := mkTx("a", "2024-01-05", "999")
	list = Reinsert(list, updated)

	assert.Equal(t, []string{"b", "a"}, idsOf(list))
	assert.True(t, list[1].Amount.Equal(decimal.RequireFromString("999")))
}

func TestReinsertDateChangeMoves(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "100"))
	list = Insert(list, mkTx("b", "2024-01-10", "-50"))

	list = Reinsert(list, mkTx("a", "2024-01-15", "100"))

	assert.Equal(t, []string{"a", "b"}, idsOf(list))
	assertDescending(t, list)
}

func TestReinsertIntoTieTakesNewestPosition(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "1"))
	list = Insert(list, mkTx("b", "2024-01-10", "1"))
	list = Insert(list, mkTx("c", "2024-01-12", "1"))

	// Moving a onto b's date re-inserts it ahead of b.
	list = Reinsert(list, mkTx("a", "2024-01-10", "1"))

	assert.Equal(t, []string{"c", "a", "b"}, idsOf(list))
}

func TestReinsertUnknownIDInserts(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "1"))
	list = Reinsert(list, mkTx("z", "2024-01-07", "1"))

	assert.Equal(t, []string{"z", "a"}, idsOf(list))
}

func TestRemoveByIDs(t *testing.T) {
	var list []Transaction
	list = Insert(list, mkTx("a", "2024-01-05", "1"))
	list = Insert(list, mkTx("b", "2024-01-10", "1"))
	list = Insert(list, mkTx("c", "2024-01-12", "1"))

	list = RemoveByIDs(list, "a", "c", "missing")
	assert.Equal(t, []string{"b"}, idsOf(list))

	list = RemoveByIDs(list, "b")
	assert.Empty(t, list)
}

func TestOrderingInvariantUnderMixedOperations(t *testing.T) {
	days := []string{
		"2024-03-01", "2024-02-15", "2024-03-01", "2024-01-31",
		"2024-02-15", "2024-03-20", "2024-02-01", "2024-03-01",
	}
	var list []Transaction
	for i, day := range days {
		list = Insert(list, mkTx(string(rune('a'+i)), day, "1"))
		assertDescending(t, list)
	}

	list = Reinsert(list, mkTx("d", "2024-03-20", "1"))
	assertDescending(t, list)
	require.Equal(t, "d", list[0].ID, "moved element takes the newest tie position")

	list = RemoveByIDs(list, "a", "h")
	assertDescending(t, list)
	assert.Len(t, list, 6)
}
