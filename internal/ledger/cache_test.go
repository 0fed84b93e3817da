package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryListCacheRoundTrip(t *testing.T) {
	c := NewMemoryListCache(time.Minute)

	_, ok, err := c.Get("owner-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set("owner-1", []byte(`[{"id":"a"}]`)))

	payload, ok, err := c.Get("owner-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, string(payload))

	// Owner scoping: a different owner never sees the entry.
	_, ok, err = c.Get("owner-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryListCacheInvalidate(t *testing.T) {
	c := NewMemoryListCache(time.Minute)
	require.NoError(t, c.Set("owner-1", []byte("x")))
	require.NoError(t, c.Invalidate("owner-1"))

	_, ok, err := c.Get("owner-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// Invalidating a missing entry is fine.
	assert.NoError(t, c.Invalidate("owner-1"))
}

func TestMemoryListCacheTTLExpiry(t *testing.T) {
	c := NewMemoryListCache(20 * time.Millisecond)
	require.NoError(t, c.Set("owner-1", []byte("x")))

	time.Sleep(50 * time.Millisecond)

	_, ok, err := c.Get("owner-1")
	require.NoError(t, err)
	assert.False(t, ok, "entry should expire after its TTL")
}
