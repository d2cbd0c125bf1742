package token

import "time"

// Claims is the decoded content of a verified token.
// Values are immutable once returned by Parse; treat as read-only.
type Claims struct {
	// Subject identifies the authenticated principal (the "sub" claim).
	Subject string

	// TokenID is the unique per-issuance identifier (the "jti" claim).
	// It correlates the token with its revocation record.
	TokenID string

	// IssuedAt is the issuance timestamp (the "iat" claim). Zero when absent.
	IssuedAt time.Time

	// ExpiresAt is the expiry timestamp (the "exp" claim). Always set for
	// tokens returned by Parse.
	ExpiresAt time.Time

	// Custom holds any non-registered claims. Key order is not significant.
	Custom map[string]any
}

// registered claim names handled via struct fields rather than Custom.
var registeredClaims = map[string]struct{}{
	"sub": {},
	"jti": {},
	"iat": {},
	"exp": {},
	"nbf": {},
}
