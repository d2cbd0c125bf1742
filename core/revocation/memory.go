package revocation

import (
	"context"
	"sync"
	"time"
)

// record binds a token identifier to its validity window.
type record struct {
	expiresAt time.Time
	revokedAt time.Time
}

func (r record) revoked() bool {
	return !r.revokedAt.IsZero()
}

// MemoryStore implements Store using in-process storage. Suited to tests and
// single-instance deployments; revocations are not visible across processes.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]record
	now     func() time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithMemoryStoreNow overrides the clock. Intended for tests.
func WithMemoryStoreNow(now func() time.Time) MemoryStoreOption {
	return func(ms *MemoryStore) {
		if now != nil {
			ms.now = now
		}
	}
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		records: make(map[string]record),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(ms)
	}
	return ms
}

// IsValid reports whether the identifier is recorded, unexpired, and not
// revoked. Unknown identifiers are invalid.
func (ms *MemoryStore) IsValid(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ms.mu.RLock()
	defer ms.mu.RUnlock()

	rec, ok := ms.records[tokenID]
	if !ok {
		return false, nil
	}
	if rec.revoked() || !rec.expiresAt.After(ms.now()) {
		return false, nil
	}
	return true, nil
}

// Record registers the identifier as valid until expiresAt. An existing
// record is left untouched, so a revocation cannot be undone by re-recording.
func (ms *MemoryStore) Record(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if expiresAt.IsZero() {
		return ErrMissingExpiration
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	if _, exists := ms.records[tokenID]; exists {
		return nil
	}
	ms.records[tokenID] = record{expiresAt: expiresAt}
	return nil
}

// Revoke marks the identifier revoked until expiresAt, creating the record
// when absent.
func (ms *MemoryStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if expiresAt.IsZero() {
		return ErrMissingExpiration
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	rec, exists := ms.records[tokenID]
	if !exists {
		rec = record{expiresAt: expiresAt}
	}
	if !rec.revoked() {
		rec.revokedAt = ms.now()
	}
	ms.records[tokenID] = rec
	return nil
}

// DeleteExpired removes records whose expiry has passed.
func (ms *MemoryStore) DeleteExpired(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := ms.now()
	var removed int64
	for id, rec := range ms.records {
		if !rec.expiresAt.After(now) {
			delete(ms.records, id)
			removed++
		}
	}
	return removed, nil
}

var _ Store = (*MemoryStore)(nil)
