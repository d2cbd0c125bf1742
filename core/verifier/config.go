package verifier

import (
	"time"

	"github.com/dmitrymomot/authguard/core/revocation"
	"github.com/dmitrymomot/authguard/core/token"
)

// Config provides environment-based configuration for the verifier.
type Config struct {
	// StoreTimeout bounds the revocation store call on a cache miss.
	StoreTimeout time.Duration `env:"AUTH_VERIFIER_STORE_TIMEOUT" envDefault:"200ms"`

	// CacheTTL and CacheMaxEntries size the revocation cache.
	CacheTTL        time.Duration `env:"AUTH_VERIFIER_CACHE_TTL" envDefault:"30s"`
	CacheMaxEntries int           `env:"AUTH_VERIFIER_CACHE_MAX_ENTRIES" envDefault:"10000"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		StoreTimeout:    DefaultStoreTimeout,
		CacheTTL:        revocation.DefaultCacheTTL,
		CacheMaxEntries: revocation.DefaultCacheMaxEntries,
	}
}

// NewFromConfig creates a Verifier from configuration. The codec and store
// are constructed by the caller (see token.NewFromConfig and the
// integration/database packages).
func NewFromConfig(cfg Config, codec *token.Service, store revocation.Store, opts ...Option) *Verifier {
	base := []Option{
		WithCache(revocation.NewCache(cfg.CacheTTL, cfg.CacheMaxEntries)),
		WithStoreTimeout(cfg.StoreTimeout),
	}
	return New(codec, store, append(base, opts...)...)
}
