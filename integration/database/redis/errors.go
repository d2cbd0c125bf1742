package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when the configuration has no
	// connection URL.
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	// ErrFailedToParseURL is returned when the connection URL cannot be
	// parsed into client options.
	ErrFailedToParseURL = errors.New("redis: failed to parse connection URL")
	// ErrFailedToConnect is returned when Redis cannot be reached after all
	// retry attempts.
	ErrFailedToConnect = errors.New("redis: failed to connect")
	// ErrHealthcheckFailed is returned by the health check probe when the
	// connection is not available.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
