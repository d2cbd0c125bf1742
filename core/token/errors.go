package token

import "errors"

var (
	// ErrMissingSigningKey is returned when a service is constructed without a key.
	ErrMissingSigningKey = errors.New("token: missing signing key")
	// ErrEmptyToken is returned when the raw token string is empty.
	ErrEmptyToken = errors.New("token: empty token")
	// ErrMalformedToken is returned when the token cannot be parsed into the
	// expected header.payload.signature structure.
	ErrMalformedToken = errors.New("token: malformed token")
	// ErrInvalidSignature is returned when the signature does not verify against the key.
	ErrInvalidSignature = errors.New("token: invalid signature")
	// ErrUnexpectedSigningMethod is returned when the token's algorithm is not
	// in the allowed set. Guards against algorithm-substitution attacks.
	ErrUnexpectedSigningMethod = errors.New("token: unexpected signing method")
	// ErrExpired is returned when the token's expiry (minus leeway) has passed.
	ErrExpired = errors.New("token: expired")
	// ErrMissingExpiration is returned when the token carries no expiry claim.
	ErrMissingExpiration = errors.New("token: missing expiration claim")
	// ErrSigningFailed is returned when token generation fails.
	ErrSigningFailed = errors.New("token: signing failed")
)
