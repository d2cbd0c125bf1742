package token

import "time"

// Config provides environment-based configuration for the token service.
type Config struct {
	// SigningKey is the shared secret used to verify and sign tokens (required, no default).
	SigningKey string `env:"AUTH_TOKEN_SIGNING_KEY"`

	// AllowedAlgorithms is the set of accepted signing algorithms.
	AllowedAlgorithms []string `env:"AUTH_TOKEN_ALLOWED_ALGORITHMS" envSeparator:"," envDefault:"HS256"`

	// Leeway is the clock-skew tolerance for temporal claim validation.
	Leeway time.Duration `env:"AUTH_TOKEN_LEEWAY" envDefault:"0s"`
}

// DefaultConfig returns a Config with sensible defaults.
// Note: SigningKey must be set explicitly - it has no default.
func DefaultConfig() Config {
	return Config{
		AllowedAlgorithms: []string{"HS256"},
	}
}

// NewFromConfig creates a token service from configuration.
// Returns ErrMissingSigningKey when no key is configured.
func NewFromConfig(cfg Config) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}

	opts := []Option{}
	if len(cfg.AllowedAlgorithms) > 0 {
		opts = append(opts, WithAllowedAlgorithms(cfg.AllowedAlgorithms...))
	}
	if cfg.Leeway > 0 {
		opts = append(opts, WithLeeway(cfg.Leeway))
	}

	return NewFromString(cfg.SigningKey, opts...)
}
