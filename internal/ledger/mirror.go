package ledger

import "sync"

// Mirror is an optimistic local replica of one owner's ordered
// transaction list. It is seeded from a full read; afterwards each
// mutation result from the service is applied locally through the
// ordering engine instead of refetching. Elements are addressed by
// stable id only; the positional ordering is exposed purely as a
// derived, read-only view.
type Mirror struct {
	mu    sync.RWMutex
	items []Transaction
}

// NewMirror seeds a mirror from an ordered list (typically the result
// of Service.List). The slice is copied.
func NewMirror(seed []Transaction) *Mirror {
	m := &Mirror{}
	m.Seed(seed)
	return m
}

// Seed replaces the mirror's contents with a fresh full read.
func (m *Mirror) Seed(list []Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items[:0:0], list...)
}

// ApplyCreate inserts a stored transaction at its ordered position.
func (m *Mirror) ApplyCreate(tx Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = Insert(m.items, tx)
}

// ApplyUpdate merges an updated transaction, moving it when its date
// changed.
func (m *Mirror) ApplyUpdate(tx Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = Reinsert(m.items, tx)
}

// ApplyDelete removes the given ids. Unknown ids are ignored.
func (m *Mirror) ApplyDelete(ids ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = RemoveByIDs(m.items, ids...)
}

// Get looks a transaction up by id.
func (m *Mirror) Get(id string) (Transaction, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.items {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Snapshot returns a copy of the current ordered list.
func (m *Mirror) Snapshot() []Transaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Transaction(nil), m.items...)
}

// Len reports the number of mirrored transactions.
func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
