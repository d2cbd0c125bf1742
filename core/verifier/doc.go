// Package verifier composes the token codec, the revocation cache, and a
// revocation store into one authentication decision.
//
// A Verifier is constructed once at process start and shared by all request
// handlers; it owns no persistent state of its own and is safe for concurrent
// use. The decision path is:
//
//	raw token -> codec (signature, expiry) -> token ID -> cache -> store on miss
//
// # Consistency
//
// Revocation visibility is eventual, not linearizable: a token revoked on
// another instance keeps being accepted here for at most one cache TTL window
// plus propagation delay. This relaxation is deliberate; it keeps the hot
// path free of storage round trips. Revocations observed through this
// process's own Revoke invalidate the local cache entry immediately.
//
// # Usage
//
//	codec, _ := token.NewFromString(signingKey)
//	store := revocation.NewRedisStore(redisClient)
//	v := verifier.New(codec, store)
//
//	claims, err := v.Authenticate(ctx, rawToken)
//	switch {
//	case errors.Is(err, verifier.ErrRevoked):
//		// token was revoked; force re-login
//	case errors.Is(err, revocation.ErrUnavailable):
//		// infrastructure fault; caller decides on retry/backoff
//	}
//
// Failures inside Authenticate are terminal for the request; the Verifier
// never retries. Store calls run under a bounded timeout derived from the
// request context, so upstream cancellation releases pool resources.
package verifier
