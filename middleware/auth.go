package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/authguard/core/logger"
	"github.com/dmitrymomot/authguard/core/revocation"
	"github.com/dmitrymomot/authguard/core/token"
	"github.com/dmitrymomot/authguard/core/verifier"
)

// claimsContextKey keys authenticated claims in the request context.
type claimsContextKey struct{}

// errorResponse is the JSON body written on authentication failure.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Config configures the authentication middleware.
type Config struct {
	// Verifier performs the actual authentication decision (required).
	Verifier *verifier.Verifier
	// Extractor pulls the raw token from the request
	// (default: auth_token cookie, then Authorization Bearer header).
	Extractor TokenExtractor
	// CookieName overrides the cookie checked by the default extractor.
	// Ignored when Extractor is set.
	CookieName string
	// Skip defines a function to skip authentication for specific requests.
	Skip func(r *http.Request) bool
	// ErrorHandler overrides the default JSON error response.
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// Logger for authentication failures (default: discard).
	Logger *slog.Logger
}

// Auth creates authentication middleware with defaults: cookie-then-header
// extraction and JSON error responses.
func Auth(v *verifier.Verifier) func(http.Handler) http.Handler {
	return AuthWithConfig(Config{Verifier: v})
}

// AuthWithConfig creates authentication middleware with custom configuration.
// Panics if no verifier is provided; this is a wiring mistake, not a runtime
// condition.
func AuthWithConfig(cfg Config) func(http.Handler) http.Handler {
	if cfg.Verifier == nil {
		panic("auth middleware: verifier is required")
	}
	if cfg.Extractor == nil {
		cookieName := cfg.CookieName
		if cookieName == "" {
			cookieName = DefaultCookieName
		}
		cfg.Extractor = Chain(FromCookie(cookieName), FromAuthHeader())
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			writeError(w, err)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := cfg.Extractor(r)
			if err != nil {
				cfg.Logger.InfoContext(r.Context(), "token extraction failed",
					logger.Component("middleware"), logger.Error(err))
				cfg.ErrorHandler(w, r, err)
				return
			}

			claims, err := cfg.Verifier.Authenticate(r.Context(), raw)
			if err != nil {
				cfg.ErrorHandler(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext retrieves the authenticated claims stored by Auth.
func ClaimsFromContext(ctx context.Context) (token.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(token.Claims)
	return claims, ok
}

// statusForError maps the closed error taxonomy to HTTP status codes.
// Everything the client caused is 401; infrastructure faults and anything
// unclassified are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrNoToken),
		errors.Is(err, verifier.ErrMissingToken),
		errors.Is(err, verifier.ErrMissingTokenID),
		errors.Is(err, verifier.ErrRevoked),
		errors.Is(err, token.ErrEmptyToken),
		errors.Is(err, token.ErrMalformedToken),
		errors.Is(err, token.ErrMissingExpiration),
		errors.Is(err, token.ErrInvalidSignature),
		errors.Is(err, token.ErrUnexpectedSigningMethod),
		errors.Is(err, token.ErrExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// messageForError returns the client-facing message. Client faults get the
// sentinel's message; server faults get a generic message so internals never
// leak to the client.
func messageForError(err error, status int) string {
	if status == http.StatusUnauthorized {
		switch {
		case errors.Is(err, token.ErrExpired):
			return "token is expired, please log in again"
		case errors.Is(err, verifier.ErrRevoked):
			return "token has been revoked"
		case errors.Is(err, ErrNoToken), errors.Is(err, verifier.ErrMissingToken):
			return "token is missing"
		default:
			return "invalid token"
		}
	}
	if errors.Is(err, revocation.ErrUnavailable) {
		return "authentication is temporarily unavailable"
	}
	return "internal server error"
}

func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{
		Success: false,
		Error:   messageForError(err, status),
	})
}
