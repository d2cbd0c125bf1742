package revocation

import "errors"

var (
	// ErrUnavailable is returned when the backing store cannot be reached or
	// times out. It is never cached and maps to an infrastructure fault, not
	// a decision about the token.
	ErrUnavailable = errors.New("revocation: store unavailable")
	// ErrEmptyTokenID is returned when a store operation is attempted with a
	// blank token identifier.
	ErrEmptyTokenID = errors.New("revocation: empty token id")
	// ErrMissingExpiration is returned when a record is written without an
	// expiry; records must be retired once their token can no longer be presented.
	ErrMissingExpiration = errors.New("revocation: missing record expiration")
)
