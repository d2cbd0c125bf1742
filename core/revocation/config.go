package revocation

import "time"

// Config provides environment-based configuration for the revocation cache
// and store clients.
type Config struct {
	// CacheTTL bounds how long a cached validity answer may be served.
	// A revoked token stops being accepted within at most one TTL window.
	CacheTTL time.Duration `env:"AUTH_REVOCATION_CACHE_TTL" envDefault:"30s"`

	// CacheMaxEntries caps cache memory; least recently used entries are
	// evicted beyond this count.
	CacheMaxEntries int `env:"AUTH_REVOCATION_CACHE_MAX_ENTRIES" envDefault:"10000"`

	// QueryTimeout bounds each store query.
	QueryTimeout time.Duration `env:"AUTH_REVOCATION_QUERY_TIMEOUT" envDefault:"200ms"`

	// RedisKeyPrefix namespaces Redis-backed records.
	RedisKeyPrefix string `env:"AUTH_REVOCATION_REDIS_KEY_PREFIX" envDefault:"authguard:token:"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CacheTTL:        DefaultCacheTTL,
		CacheMaxEntries: DefaultCacheMaxEntries,
		QueryTimeout:    DefaultQueryTimeout,
		RedisKeyPrefix:  DefaultRedisKeyPrefix,
	}
}

// NewCacheFromConfig creates a Cache from configuration.
func NewCacheFromConfig(cfg Config) *Cache {
	return NewCache(cfg.CacheTTL, cfg.CacheMaxEntries)
}
