package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxExecutor is the subset of pgxpool.Pool and pgx.Tx the store needs, so
// the same statements run against either.
type pgxExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultQueryTimeout bounds each store query so a slow database surfaces as
// ErrUnavailable instead of hanging the request.
const DefaultQueryTimeout = 200 * time.Millisecond

// PostgresStore implements Store on a pgx connection pool. The schema is
// installed by the embedded goose migrations (see the migrations
// subdirectory); one row per issued token, keyed by token ID.
type PostgresStore struct {
	db      pgxExecutor
	timeout time.Duration
}

// PostgresStoreOption configures a PostgresStore.
type PostgresStoreOption func(*PostgresStore)

// WithQueryTimeout sets the per-query timeout. Default is DefaultQueryTimeout.
func WithQueryTimeout(timeout time.Duration) PostgresStoreOption {
	return func(ps *PostgresStore) {
		if timeout > 0 {
			ps.timeout = timeout
		}
	}
}

// NewPostgresStore creates a store backed by the given pool. The pool is
// shared, not owned: closing it remains the caller's responsibility.
func NewPostgresStore(pool *pgxpool.Pool, opts ...PostgresStoreOption) *PostgresStore {
	ps := &PostgresStore{
		db:      pool,
		timeout: DefaultQueryTimeout,
	}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// InTx returns a store whose statements run inside the given transaction,
// so a revocation can commit atomically with other domain writes. The
// receiver is unchanged and keeps using the pool.
func (ps *PostgresStore) InTx(tx pgx.Tx) *PostgresStore {
	return &PostgresStore{
		db:      tx,
		timeout: ps.timeout,
	}
}

// IsValid reports whether the identifier has an unexpired, unrevoked record.
// No row means invalid: unknown identifiers are denied by default.
func (ps *PostgresStore) IsValid(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}

	ctx, cancel := context.WithTimeout(ctx, ps.timeout)
	defer cancel()

	var valid bool
	err := ps.db.QueryRow(ctx,
		`SELECT revoked_at IS NULL FROM token_records WHERE token_id = $1 AND expires_at > now()`,
		tokenID,
	).Scan(&valid)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(ErrUnavailable, err)
	}
	return valid, nil
}

// Record registers the identifier as valid until expiresAt. Conflicting
// inserts are ignored so issuance retries cannot clear a revocation.
func (ps *PostgresStore) Record(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if expiresAt.IsZero() {
		return ErrMissingExpiration
	}

	ctx, cancel := context.WithTimeout(ctx, ps.timeout)
	defer cancel()

	_, err := ps.db.Exec(ctx,
		`INSERT INTO token_records (token_id, expires_at) VALUES ($1, $2)
		 ON CONFLICT (token_id) DO NOTHING`,
		tokenID, expiresAt,
	)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// Revoke marks the identifier revoked, creating the record when absent.
// The earliest revocation timestamp wins.
func (ps *PostgresStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if expiresAt.IsZero() {
		return ErrMissingExpiration
	}

	ctx, cancel := context.WithTimeout(ctx, ps.timeout)
	defer cancel()

	_, err := ps.db.Exec(ctx,
		`INSERT INTO token_records (token_id, expires_at, revoked_at) VALUES ($1, $2, now())
		 ON CONFLICT (token_id) DO UPDATE SET revoked_at = COALESCE(token_records.revoked_at, now())`,
		tokenID, expiresAt,
	)
	if err != nil {
		return errors.Join(ErrUnavailable, err)
	}
	return nil
}

// DeleteExpired removes records whose tokens can no longer be presented.
// Meant to run periodically (cron or a background worker), not on the hot path.
func (ps *PostgresStore) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := ps.db.Exec(ctx, `DELETE FROM token_records WHERE expires_at <= now()`)
	if err != nil {
		return 0, errors.Join(ErrUnavailable, err)
	}
	return tag.RowsAffected(), nil
}

var _ Store = (*PostgresStore)(nil)
