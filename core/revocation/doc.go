// Package revocation tracks which token identifiers are still valid and
// caches those answers in memory.
//
// A token is correlated to a revocation record by its token ID (the "jti"
// claim). Records are written when a token is issued and marked revoked on
// logout or key compromise. The package is deliberately allow-list shaped:
// an absent record means the token is NOT valid (default-deny), so an
// attacker cannot mint a fresh jti and skip the list.
//
// # Store
//
// Store is the single external-storage touchpoint. Three implementations are
// provided:
//
//   - MemoryStore: mutex-guarded map, for tests and single-process setups.
//   - PostgresStore: pgx-backed table, schema installed via the embedded
//     goose migrations (see the migrations subdirectory and
//     integration/database/pg.Migrate).
//   - RedisStore: one key per token ID with a TTL matching the token's
//     natural expiry, so Redis retires records by itself.
//
// Every connectivity or timeout failure surfaces as ErrUnavailable; callers
// must not interpret an outage as "revoked" or "valid".
//
// # Cache
//
// Cache is a TTL-bounded LRU sitting in front of a Store. It never performs
// I/O: a miss is reported immediately and the caller decides whether to
// consult the Store. Entries expire after the configured TTL, which bounds
// how long a revocation elsewhere can remain invisible to this process.
// Invalidate purges an entry immediately for zero-delay local revocation.
//
//	cache := revocation.NewCache(30*time.Second, 10_000)
//	if state, ok := cache.Lookup(tokenID); !ok {
//		valid, err := store.IsValid(ctx, tokenID)
//		// ... fill the cache on success only
//	}
package revocation
