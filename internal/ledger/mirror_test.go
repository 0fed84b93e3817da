package ledger

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeffrey-cordero/capital/internal/date"
)

func TestMirrorSeedCopies(t *testing.T) {
	seed := []Transaction{mkTx("a", "2024-01-05", "1")}
	m := NewMirror(seed)

	seed[0].ID = "mutated"
	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestMirrorAppliesMutationsInOrder(t *testing.T) {
	m := NewMirror(nil)

	m.ApplyCreate(mkTx("a", "2024-01-05", "100"))
	m.ApplyCreate(mkTx("b", "2024-01-10", "-50"))
	assert.Equal(t, []string{"b", "a"}, idsOf(m.Snapshot()))

	m.ApplyUpdate(mkTx("a", "2024-01-15", "100"))
	assert.Equal(t, []string{"a", "b"}, idsOf(m.Snapshot()))

	m.ApplyDelete("b")
	assert.Equal(t, []string{"a"}, idsOf(m.Snapshot()))

	m.ApplyDelete("a")
	assert.Zero(t, m.Len())
}

func TestMirrorSnapshotIsReadOnlyView(t *testing.T) {
	m := NewMirror([]Transaction{mkTx("a", "2024-01-05", "1")})

	snap := m.Snapshot()
	snap[0].ID = "mutated"

	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
}

func TestMirrorConcurrentAccess(t *testing.T) {
	m := NewMirror(nil)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		day := date.New(2024, time.January, 1+i)
		go func(i int) {
			defer wg.Done()
			m.ApplyCreate(Transaction{ID: string(rune('a' + i)), Date: day})
		}(i)
		go func() {
			defer wg.Done()
			_ = m.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, m.Len())
	assertDescending(t, m.Snapshot())
}

// Mirrors stay in lockstep with the service without refetching: the
// scenario walks create, date-moving update, and batch delete through
// both sides and compares the ordered views at every step.
func TestMirrorTracksServiceWithoutRefetch(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, NewMemoryListCache(time.Minute))
	ctx := context.Background()

	seed, err := svc.List(ctx, testOwner)
	require.NoError(t, err)
	m := NewMirror(seed)

	tx1, err := svc.Create(ctx, testOwner, createInput("2024-01-05", "100"))
	require.NoError(t, err)
	m.ApplyCreate(tx1)

	tx2, err := svc.Create(ctx, testOwner, createInput("2024-01-10", "-50"))
	require.NoError(t, err)
	m.ApplyCreate(tx2)

	assert.Equal(t, []string{tx2.ID, tx1.ID}, idsOf(m.Snapshot()))

	// Move tx1 to the newest date; the mirror applies the same merge
	// the store applied.
	newDay, _ := date.Parse("2024-01-15")
	require.NoError(t, svc.Update(ctx, testOwner, tx1.ID, UpdateInput{Date: &newDay}))
	moved := tx1
	moved.Date = newDay
	m.ApplyUpdate(moved)

	assert.Equal(t, []string{tx1.ID, tx2.ID}, idsOf(m.Snapshot()))
	assert.Equal(t, "2024-01-15", m.Snapshot()[0].Date.String())

	require.NoError(t, svc.DeleteBatch(ctx, testOwner, []string{tx2.ID}))
	m.ApplyDelete(tx2.ID)

	snap := m.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, tx1.ID, snap[0].ID)
	assert.Equal(t, "100", snap[0].Amount.String())

	// The mirror's view and a fresh service read agree exactly.
	fresh, err := svc.List(ctx, testOwner)
	require.NoError(t, err)
	assert.Equal(t, idsOf(fresh), idsOf(snap))
}
