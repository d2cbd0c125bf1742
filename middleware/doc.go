// Package middleware adapts the verifier to net/http.
//
// Auth wraps a handler with token authentication: it extracts the raw token
// from the request (session cookie first, then the Authorization header),
// runs it through the verifier, and either stores the authenticated claims
// in the request context or writes a JSON error response.
//
//	v := verifier.New(codec, store)
//
//	mux := http.NewServeMux()
//	mux.Handle("/api/", middleware.Auth(v)(apiHandler))
//
//	func apiHandler(w http.ResponseWriter, r *http.Request) {
//		claims, ok := middleware.ClaimsFromContext(r.Context())
//		if !ok {
//			// unreachable behind Auth
//		}
//		_ = claims.Subject
//	}
//
// # Error Responses
//
// Failures produce `{"success": false, "error": "<message>"}`. Client faults
// (missing, malformed, expired, or revoked tokens) map to 401; revocation
// store outages and unclassified failures map to 500 with a generic message,
// details going to the logger only.
package middleware
