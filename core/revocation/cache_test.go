package revocation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/authguard/core/revocation"
)

func TestCacheLookupAndFill(t *testing.T) {
	t.Parallel()

	cache := revocation.NewCache(time.Minute, 10)

	state, ok := cache.Lookup("tok-1")
	assert.False(t, ok)
	assert.Equal(t, revocation.StateUnknown, state)

	cache.Fill("tok-1", revocation.StateValid)
	state, ok = cache.Lookup("tok-1")
	assert.True(t, ok)
	assert.Equal(t, revocation.StateValid, state)

	cache.Fill("tok-1", revocation.StateRevoked)
	state, ok = cache.Lookup("tok-1")
	assert.True(t, ok)
	assert.Equal(t, revocation.StateRevoked, state)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheIgnoresUnusableFills(t *testing.T) {
	t.Parallel()

	cache := revocation.NewCache(time.Minute, 10)

	cache.Fill("", revocation.StateValid)
	cache.Fill("tok-1", revocation.StateUnknown)
	assert.Equal(t, 0, cache.Len())
}

func TestCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := func() time.Time { return now }
	cache := revocation.NewCache(30*time.Second, 10, revocation.WithCacheNow(func() time.Time { return clock() }))

	cache.Fill("tok-1", revocation.StateValid)

	_, ok := cache.Lookup("tok-1")
	assert.True(t, ok)

	// One TTL window later the entry must miss and be gone.
	now = now.Add(30 * time.Second)
	_, ok = cache.Lookup("tok-1")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())

	// Refill starts a fresh window.
	cache.Fill("tok-1", revocation.StateRevoked)
	state, ok := cache.Lookup("tok-1")
	assert.True(t, ok)
	assert.Equal(t, revocation.StateRevoked, state)
}

func TestCacheLRUEviction(t *testing.T) {
	t.Parallel()

	cache := revocation.NewCache(time.Minute, 3)

	cache.Fill("tok-1", revocation.StateValid)
	cache.Fill("tok-2", revocation.StateValid)
	cache.Fill("tok-3", revocation.StateValid)

	// Touch tok-1 so tok-2 becomes the least recently used.
	_, ok := cache.Lookup("tok-1")
	assert.True(t, ok)

	cache.Fill("tok-4", revocation.StateValid)
	assert.Equal(t, 3, cache.Len())

	_, ok = cache.Lookup("tok-2")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = cache.Lookup("tok-1")
	assert.True(t, ok)
	_, ok = cache.Lookup("tok-4")
	assert.True(t, ok)
}

func TestCacheInvalidate(t *testing.T) {
	t.Parallel()

	cache := revocation.NewCache(time.Minute, 10)

	cache.Fill("tok-1", revocation.StateValid)
	cache.Invalidate("tok-1")

	_, ok := cache.Lookup("tok-1")
	assert.False(t, ok)

	// Invalidating a missing entry is a no-op.
	cache.Invalidate("tok-404")
}
