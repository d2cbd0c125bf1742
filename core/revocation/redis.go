package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKeyPrefix namespaces token records in a shared Redis instance.
const DefaultRedisKeyPrefix = "authguard:token:"

const (
	redisStateValid   = "valid"
	redisStateRevoked = "revoked"
)

// RedisStore implements Store on a Redis client. Each identifier maps to one
// key whose TTL matches the token's natural expiry, so Redis retires records
// without a separate sweep.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	timeout   time.Duration
	now       func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisKeyPrefix overrides the key namespace. Default is DefaultRedisKeyPrefix.
func WithRedisKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		if prefix != "" {
			rs.keyPrefix = prefix
		}
	}
}

// WithRedisTimeout sets the per-command timeout. Default is DefaultQueryTimeout.
func WithRedisTimeout(timeout time.Duration) RedisStoreOption {
	return func(rs *RedisStore) {
		if timeout > 0 {
			rs.timeout = timeout
		}
	}
}

// WithRedisNow overrides the clock. Intended for tests.
func WithRedisNow(now func() time.Time) RedisStoreOption {
	return func(rs *RedisStore) {
		if now != nil {
			rs.now = now
		}
	}
}

// NewRedisStore creates a store on the given client. The client is shared,
// not owned.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client:    client,
		keyPrefix: DefaultRedisKeyPrefix,
		timeout:   DefaultQueryTimeout,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// IsValid reports whether the identifier's key exists and holds the valid
// marker. A missing key means invalid: either never recorded or already
// expired out of Redis.
func (rs *RedisStore) IsValid(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}

	ctx, cancel := context.WithTimeout(ctx, rs.timeout)
	defer cancel()

	state, err := rs.client.Get(ctx, rs.key(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	return state == redisStateValid, nil
}

// Record registers the identifier as valid until expiresAt. SETNX keeps an
// existing (possibly revoked) record authoritative over issuance retries.
func (rs *RedisStore) Record(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	ttl := expiresAt.Sub(rs.now())
	if ttl <= 0 {
		return ErrMissingExpiration
	}

	ctx, cancel := context.WithTimeout(ctx, rs.timeout)
	defer cancel()

	if err := rs.client.SetNX(ctx, rs.key(tokenID), redisStateValid, ttl).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Revoke overwrites the identifier's key with the revoked marker, keeping it
// until the token's natural expiry. Revoking an already-expired token is a
// no-op: the missing key already denies it.
func (rs *RedisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	ttl := expiresAt.Sub(rs.now())
	if ttl <= 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, rs.timeout)
	defer cancel()

	if err := rs.client.Set(ctx, rs.key(tokenID), redisStateRevoked, ttl).Err(); err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// DeleteExpired is satisfied by Redis key TTLs; nothing to sweep.
func (rs *RedisStore) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (rs *RedisStore) key(tokenID string) string {
	return rs.keyPrefix + tokenID
}

var _ Store = (*RedisStore)(nil)
