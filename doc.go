// Package authguard implements revocable token authentication: stateless
// JWT verification combined with a server-side revocation store, so a token
// can be invalidated before it expires.
//
// The building blocks compose rather than prescribe an application shape:
//
//   - core/token: HMAC JWT signing and verification with a closed error set
//   - core/revocation: the revocation store contract, an in-process TTL/LRU
//     cache, and Postgres, Redis, and in-memory store implementations
//   - core/verifier: the per-request decision, combining codec, cache, and
//     store with a default-deny policy
//   - middleware: net/http middleware that extracts the token from a cookie
//     or Authorization header and maps failures to JSON error responses
//   - integration/database: Postgres and Redis connection management with
//     retries, migrations, and health checks
//
// A minimal service wires them like this:
//
//	codec, err := token.NewFromString(os.Getenv("AUTH_TOKEN_SIGNING_KEY"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store := revocation.NewMemoryStore()
//	v := verifier.New(codec, store)
//
//	mux := http.NewServeMux()
//	mux.Handle("/me", middleware.Auth(v)(profileHandler))
package authguard
