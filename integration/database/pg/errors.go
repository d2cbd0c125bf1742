package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrEmptyConnectionString is returned when the configuration has no
	// connection string.
	ErrEmptyConnectionString = errors.New("pg: empty connection string")
	// ErrFailedToParseConfig is returned when the connection string cannot
	// be parsed into a pool configuration.
	ErrFailedToParseConfig = errors.New("pg: failed to parse pool config")
	// ErrFailedToConnect is returned when the database cannot be reached
	// after all retry attempts.
	ErrFailedToConnect = errors.New("pg: failed to connect")
	// ErrFailedToApplyMigrations is returned when schema migrations fail.
	ErrFailedToApplyMigrations = errors.New("pg: failed to apply migrations")
	// ErrHealthcheckFailed is returned by the health check probe when the
	// connection is not available.
	ErrHealthcheckFailed = errors.New("pg: healthcheck failed")
)

// IsNotFoundError reports whether err indicates that a query matched no rows.
func IsNotFoundError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsDuplicateKeyError reports whether err is a unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// IsForeignKeyViolationError reports whether err is a referential integrity
// violation.
func IsForeignKeyViolationError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
