package revocation

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultCacheTTL bounds how stale a cached validity answer may be.
	DefaultCacheTTL = 30 * time.Second
	// DefaultCacheMaxEntries bounds cache memory under token-identifier churn.
	DefaultCacheMaxEntries = 10_000
)

// cacheEntry is owned exclusively by the Cache; it is mutated only on fill
// and evicted by TTL or capacity pressure.
type cacheEntry struct {
	tokenID   string
	state     State
	fetchedAt time.Time
}

// Cache is an in-memory, TTL-bounded LRU cache of token validity states.
// It performs no I/O: a miss is reported immediately, leaving the decision
// to consult the store (or fail closed) to the caller.
//
// All methods are safe for concurrent use. A single mutex guards the map and
// recency list; entries are small and hold times are tiny, so finer-grained
// locking has not been worth it.
type Cache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
	ttl      time.Duration
	capacity int
	now      func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithCacheNow overrides the clock. Intended for tests.
func WithCacheNow(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache creates a cache with the given entry TTL and capacity.
// Non-positive arguments fall back to the package defaults.
func NewCache(ttl time.Duration, maxEntries int, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}

	c := &Cache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		ttl:      ttl,
		capacity: maxEntries,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the cached state for the identifier. The second return is
// false when no entry exists or the entry's TTL has elapsed; expired entries
// are removed on the way out so a later Fill starts a fresh TTL window.
func (c *Cache) Lookup(tokenID string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[tokenID]
	if !ok {
		return StateUnknown, false
	}

	entry := elem.Value.(*cacheEntry)
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		c.removeLocked(elem)
		return StateUnknown, false
	}

	c.order.MoveToFront(elem)
	return entry.state, true
}

// Fill stores the state for the identifier, refreshing the TTL window and
// recency. The least recently used entry is evicted at capacity.
func (c *Cache) Fill(tokenID string, state State) {
	if tokenID == "" || state == StateUnknown {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[tokenID]; ok {
		entry := elem.Value.(*cacheEntry)
		entry.state = state
		entry.fetchedAt = c.now()
		c.order.MoveToFront(elem)
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeLocked(oldest)
		}
	}

	c.entries[tokenID] = c.order.PushFront(&cacheEntry{
		tokenID:   tokenID,
		state:     state,
		fetchedAt: c.now(),
	})
}

// Invalidate purges the entry for the identifier, guaranteeing the next
// lookup misses. Used on locally observed revocation events so the new state
// is visible immediately rather than after the TTL window.
func (c *Cache) Invalidate(tokenID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[tokenID]; ok {
		c.removeLocked(elem)
	}
}

// Len returns the current number of cached entries, including any whose TTL
// has elapsed but which have not been looked up since.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

func (c *Cache) removeLocked(elem *list.Element) {
	entry := elem.Value.(*cacheEntry)
	delete(c.entries, entry.tokenID)
	c.order.Remove(elem)
}
