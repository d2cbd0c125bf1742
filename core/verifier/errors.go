package verifier

import "errors"

var (
	// ErrMissingToken is returned when no token was presented at all.
	ErrMissingToken = errors.New("verifier: missing token")
	// ErrMissingTokenID is returned when a cryptographically valid token
	// carries no token identifier. Distinct from "not revoked": without an
	// identifier the revocation list cannot vouch for the token.
	ErrMissingTokenID = errors.New("verifier: missing token id")
	// ErrRevoked is returned when the token's identifier is revoked or was
	// never recorded (default-deny).
	ErrRevoked = errors.New("verifier: token revoked")
)
