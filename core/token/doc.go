// Package token provides signed-token encoding and verification built on JWT (HS256 by default).
//
// The package is the pure, I/O-free half of request authentication: it parses a raw
// token string, verifies its signature against a configured key, validates temporal
// claims with an optional clock-skew leeway, and returns an immutable Claims value.
// Revocation checks and transport concerns live in core/verifier and middleware.
//
// # Usage
//
// Create a service with a signing key:
//
//	svc, err := token.NewFromString("your-256-bit-secret")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Restrict accepted algorithms and allow clock skew:
//
//	svc, err := token.New(key,
//		token.WithAllowedAlgorithms("HS256"),
//		token.WithLeeway(30*time.Second),
//	)
//
// Verify a token:
//
//	claims, err := svc.Parse(raw)
//	switch {
//	case errors.Is(err, token.ErrExpired):
//		// token lifetime elapsed
//	case errors.Is(err, token.ErrInvalidSignature):
//		// signature does not verify against the key
//	case errors.Is(err, token.ErrMalformedToken):
//		// not a structurally valid token
//	}
//
// Generate a token (fills the token ID with a fresh UUID when empty):
//
//	raw, err := svc.Generate(token.Claims{
//		Subject:   "user-123",
//		ExpiresAt: time.Now().Add(15 * time.Minute),
//	})
//
// # Error Handling
//
// All verification failures map to package sentinel errors checked with errors.Is.
// Underlying library errors never escape this package untranslated.
package token
