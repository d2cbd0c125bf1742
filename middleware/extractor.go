package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// DefaultCookieName is the cookie checked for a token before the
// Authorization header.
const DefaultCookieName = "auth_token"

var (
	// ErrNoToken is returned when no extractor found a token in the request.
	ErrNoToken = errors.New("middleware: no token in request")
	// ErrInvalidAuthScheme is returned when the Authorization header is
	// present but does not use the Bearer scheme. It wraps ErrNoToken: a
	// header without a valid scheme carries no usable token.
	ErrInvalidAuthScheme = fmt.Errorf("%w: authorization scheme must be Bearer", ErrNoToken)
)

// TokenExtractor pulls a raw token string out of a request.
// Returning ErrNoToken lets a Chain fall through to the next extractor;
// any other error aborts extraction.
type TokenExtractor func(r *http.Request) (string, error)

// FromCookie extracts the token from the named cookie. net/http parses each
// cookie pair on the first "=" only, so token values containing "=" survive
// intact.
func FromCookie(name string) TokenExtractor {
	return func(r *http.Request) (string, error) {
		cookie, err := r.Cookie(name)
		if err != nil || cookie.Value == "" {
			return "", ErrNoToken
		}
		return cookie.Value, nil
	}
}

// FromAuthHeader extracts the token from the Authorization header. The
// scheme word must be exactly "Bearer" followed by a space; a header like
// "BearerXYZ" is rejected rather than truncated into a bogus token.
func FromAuthHeader() TokenExtractor {
	return func(r *http.Request) (string, error) {
		header := r.Header.Get("Authorization")
		if header == "" {
			return "", ErrNoToken
		}

		scheme, rawToken, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" {
			return "", ErrInvalidAuthScheme
		}
		rawToken = strings.TrimSpace(rawToken)
		if rawToken == "" {
			return "", ErrNoToken
		}
		return rawToken, nil
	}
}

// Chain tries extractors in order and returns the first token found.
// ErrNoToken falls through to the next extractor; any other error stops the
// chain. When every extractor comes up empty, the last error is returned so
// a specific failure like ErrInvalidAuthScheme is not flattened away.
func Chain(extractors ...TokenExtractor) TokenExtractor {
	return func(r *http.Request) (string, error) {
		err := error(ErrNoToken)
		for _, extract := range extractors {
			raw, extractErr := extract(r)
			if extractErr == nil {
				return raw, nil
			}
			if !errors.Is(extractErr, ErrNoToken) {
				return "", extractErr
			}
			err = extractErr
		}
		return "", err
	}
}

// DefaultExtractor checks the auth_token cookie first, falling back to the
// Authorization Bearer header.
func DefaultExtractor() TokenExtractor {
	return Chain(FromCookie(DefaultCookieName), FromAuthHeader())
}
