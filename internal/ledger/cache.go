package ledger

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ListCache holds, per owner, the full ordered transaction list as one
// serialized blob with a fixed TTL. It is never partially patched: a
// mutation invalidates the entry and the next read repopulates it.
// Implementations may fail (an external cache can be down or slow);
// the service treats any error as a miss and never lets it abort the
// surrounding operation.
type ListCache interface {
	Get(ownerID string) (payload []byte, ok bool, err error)
	Set(ownerID string, payload []byte) error
	Invalidate(ownerID string) error
}

// MemoryListCache is a ListCache over an in-process TTL cache. Its
// operations cannot fail, so the error returns exist only to satisfy
// the degraded-mode contract shared with external implementations.
type MemoryListCache struct {
	c *gocache.Cache
}

// DefaultListTTL bounds how stale a cached list can get if an
// invalidation is ever lost.
const DefaultListTTL = 5 * time.Minute

func NewMemoryListCache(ttl time.Duration) *MemoryListCache {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}
	return &MemoryListCache{c: gocache.New(ttl, 2*ttl)}
}

func (m *MemoryListCache) Get(ownerID string) ([]byte, bool, error) {
	v, ok := m.c.Get(ownerID)
	if !ok {
		return nil, false, nil
	}
	payload, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return payload, true, nil
}

func (m *MemoryListCache) Set(ownerID string, payload []byte) error {
	m.c.SetDefault(ownerID, payload)
	return nil
}

func (m *MemoryListCache) Invalidate(ownerID string) error {
	m.c.Delete(ownerID)
	return nil
}
