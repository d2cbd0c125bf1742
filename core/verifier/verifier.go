package verifier

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/authguard/core/logger"
	"github.com/dmitrymomot/authguard/core/revocation"
	"github.com/dmitrymomot/authguard/core/token"
)

// DefaultStoreTimeout bounds the revocation store call on a cache miss.
// Sized to the same order as a typical request SLA.
const DefaultStoreTimeout = 200 * time.Millisecond

// Verifier turns a raw token string into an authenticated identity.
// Construct once with New and share across requests.
type Verifier struct {
	codec        *token.Service
	store        revocation.Store
	cache        *revocation.Cache
	storeTimeout time.Duration
	log          *slog.Logger
}

// Option configures a Verifier.
type Option func(*Verifier)

// WithCache replaces the default revocation cache. Useful for sharing one
// cache between verifiers or tuning TTL and capacity.
func WithCache(cache *revocation.Cache) Option {
	return func(v *Verifier) {
		if cache != nil {
			v.cache = cache
		}
	}
}

// WithStoreTimeout bounds the revocation store call on a cache miss.
// Default is DefaultStoreTimeout.
func WithStoreTimeout(timeout time.Duration) Option {
	return func(v *Verifier) {
		if timeout > 0 {
			v.storeTimeout = timeout
		}
	}
}

// WithLogger sets the logger for authentication failures (default: discard).
// Log records carry the token identifier and error kind, never token material.
func WithLogger(log *slog.Logger) Option {
	return func(v *Verifier) {
		if log != nil {
			v.log = log
		}
	}
}

// New creates a Verifier over the given codec and revocation store.
func New(codec *token.Service, store revocation.Store, opts ...Option) *Verifier {
	v := &Verifier{
		codec:        codec,
		store:        store,
		cache:        revocation.NewCache(revocation.DefaultCacheTTL, revocation.DefaultCacheMaxEntries),
		storeTimeout: DefaultStoreTimeout,
		log:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Authenticate verifies the raw token end to end and returns its claims as
// the authenticated identity. Codec failures (token.ErrExpired,
// token.ErrInvalidSignature, token.ErrMalformedToken, ...) propagate
// unchanged; revocation outcomes surface as ErrRevoked or
// revocation.ErrUnavailable. The store result is cached on success only, so
// a transient outage is never remembered as a decision.
func (v *Verifier) Authenticate(ctx context.Context, raw string) (token.Claims, error) {
	if raw == "" {
		return token.Claims{}, ErrMissingToken
	}

	claims, err := v.codec.Parse(raw)
	if err != nil {
		v.log.WarnContext(ctx, "token verification failed",
			logger.Component("verifier"), logger.Error(err))
		return token.Claims{}, err
	}

	if claims.TokenID == "" {
		v.log.WarnContext(ctx, "token has no identifier",
			logger.Component("verifier"), logger.Subject(claims.Subject))
		return token.Claims{}, ErrMissingTokenID
	}

	state, ok := v.cache.Lookup(claims.TokenID)
	if !ok {
		state, err = v.resolveFromStore(ctx, claims.TokenID)
		if err != nil {
			v.log.ErrorContext(ctx, "revocation store lookup failed",
				logger.Component("verifier"), logger.TokenID(claims.TokenID), logger.Error(err))
			return token.Claims{}, err
		}
		v.cache.Fill(claims.TokenID, state)
	}

	if state != revocation.StateValid {
		v.log.InfoContext(ctx, "revoked token rejected",
			logger.Component("verifier"), logger.TokenID(claims.TokenID))
		return token.Claims{}, ErrRevoked
	}

	return claims, nil
}

// Issue signs the claims and records the fresh token identifier as valid, so
// the default-deny revocation list recognizes the token from its first use.
func (v *Verifier) Issue(ctx context.Context, claims token.Claims) (string, error) {
	raw, err := v.codec.Generate(claims)
	if err != nil {
		return "", err
	}

	// Generate may have assigned the token ID and issue time; read them back.
	issued, err := v.codec.Parse(raw)
	if err != nil {
		return "", err
	}

	if err := v.store.Record(ctx, issued.TokenID, issued.ExpiresAt); err != nil {
		return "", err
	}
	return raw, nil
}

// Revoke verifies the raw token and marks its identifier revoked until the
// token's natural expiry, then purges the local cache entry so the
// revocation takes effect immediately in this process. Other instances
// observe it within their cache TTL.
func (v *Verifier) Revoke(ctx context.Context, raw string) error {
	if raw == "" {
		return ErrMissingToken
	}

	claims, err := v.codec.Parse(raw)
	if err != nil {
		return err
	}
	if claims.TokenID == "" {
		return ErrMissingTokenID
	}

	if err := v.store.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		v.log.ErrorContext(ctx, "revocation failed",
			logger.Component("verifier"), logger.TokenID(claims.TokenID), logger.Error(err))
		return err
	}
	v.cache.Invalidate(claims.TokenID)

	v.log.InfoContext(ctx, "token revoked",
		logger.Component("verifier"), logger.TokenID(claims.TokenID), logger.Subject(claims.Subject))
	return nil
}

// resolveFromStore asks the store under a bounded timeout derived from the
// request context; cancellation upstream propagates and frees pool slots.
func (v *Verifier) resolveFromStore(ctx context.Context, tokenID string) (revocation.State, error) {
	ctx, cancel := context.WithTimeout(ctx, v.storeTimeout)
	defer cancel()

	valid, err := v.store.IsValid(ctx, tokenID)
	if err != nil {
		return revocation.StateUnknown, err
	}
	if valid {
		return revocation.StateValid, nil
	}
	return revocation.StateRevoked, nil
}
