package revocation

import (
	"context"
	"time"
)

// State is the cached validity of a token identifier.
type State int8

const (
	// StateUnknown means the cache holds no usable entry for the identifier.
	StateUnknown State = iota
	// StateValid means the identifier was recorded at issuance and not revoked.
	StateValid
	// StateRevoked means the identifier was revoked, or was never recorded.
	StateRevoked
)

// String returns a human-readable state name for logging.
func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// Store answers whether a token identifier is currently valid.
// Implementations must handle concurrent access safely and must return
// ErrUnavailable (wrapped) for connectivity and timeout failures.
type Store interface {
	// IsValid reports whether the identifier is recorded and not revoked.
	// An absent record is invalid: unknown identifiers are denied by default.
	IsValid(ctx context.Context, tokenID string) (bool, error)

	// Record registers an identifier as valid at issuance time. The record
	// is retained until expiresAt so the token can be checked for its whole
	// lifetime. Recording an already-known identifier is a no-op.
	Record(ctx context.Context, tokenID string, expiresAt time.Time) error

	// Revoke marks an identifier as revoked until expiresAt. Revoking an
	// unknown identifier still writes a revoked record; default-deny already
	// rejects it, but an explicit record survives a later Record call.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error

	// DeleteExpired removes records whose tokens can no longer be presented
	// and returns the count of deleted records.
	DeleteExpired(ctx context.Context) (int64, error)
}
