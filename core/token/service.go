package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// hmacMethods are the signing algorithms this service supports. The signing
// key is a shared secret, so only the HMAC family is accepted.
var hmacMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// ErrUnsupportedAlgorithm is returned when an allowed algorithm outside the
// HMAC family is configured.
var ErrUnsupportedAlgorithm = errors.New("token: unsupported algorithm")

// Service verifies and generates signed tokens. It is stateless and safe for
// concurrent use; construct once and share.
type Service struct {
	signingKey []byte
	allowed    []string
	leeway     time.Duration
	now        func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithAllowedAlgorithms restricts the set of accepted signing algorithms.
// Default is HS256 only. Tokens signed with any other algorithm fail with
// ErrUnexpectedSigningMethod. Generated tokens use the first algorithm.
func WithAllowedAlgorithms(algs ...string) Option {
	return func(s *Service) {
		if len(algs) > 0 {
			s.allowed = algs
		}
	}
}

// WithLeeway sets the clock-skew tolerance applied to temporal claims.
// Default is zero.
func WithLeeway(leeway time.Duration) Option {
	return func(s *Service) {
		if leeway > 0 {
			s.leeway = leeway
		}
	}
}

// WithNow overrides the clock. Intended for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New creates a token service with the given signing key.
func New(signingKey []byte, opts ...Option) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		signingKey: signingKey,
		allowed:    []string{"HS256"},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, alg := range s.allowed {
		if _, ok := hmacMethods[alg]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
		}
	}

	return s, nil
}

// NewFromString creates a token service from a string signing key.
func NewFromString(signingKey string, opts ...Option) (*Service, error) {
	return New([]byte(signingKey), opts...)
}

// Parse verifies the raw token's signature and temporal claims and returns
// its Claims. Pure and deterministic given the token, key, and current time.
func (s *Service) Parse(raw string) (Claims, error) {
	if raw == "" {
		return Claims{}, ErrEmptyToken
	}

	parser := jwt.NewParser(
		jwt.WithLeeway(s.leeway),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	tok, err := parser.Parse(raw, s.keyFunc)
	if err != nil {
		return Claims{}, translateParseError(err)
	}

	mapClaims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformedToken
	}

	return claimsFromMap(mapClaims), nil
}

// Generate signs the claims and returns the raw token. A fresh UUID is
// assigned as the token ID when claims.TokenID is empty, and IssuedAt
// defaults to the current time. ExpiresAt is required.
func (s *Service) Generate(claims Claims) (string, error) {
	if claims.ExpiresAt.IsZero() {
		return "", ErrMissingExpiration
	}

	tokenID := claims.TokenID
	if tokenID == "" {
		tokenID = uuid.NewString()
	}
	issuedAt := claims.IssuedAt
	if issuedAt.IsZero() {
		issuedAt = s.now()
	}

	mapClaims := jwt.MapClaims{
		"jti": tokenID,
		"iat": issuedAt.Unix(),
		"exp": claims.ExpiresAt.Unix(),
	}
	if claims.Subject != "" {
		mapClaims["sub"] = claims.Subject
	}
	for k, v := range claims.Custom {
		if _, reserved := registeredClaims[k]; reserved {
			continue
		}
		mapClaims[k] = v
	}

	raw, err := jwt.NewWithClaims(hmacMethods[s.allowed[0]], mapClaims).SignedString(s.signingKey)
	if err != nil {
		return "", errors.Join(ErrSigningFailed, err)
	}
	return raw, nil
}

// keyFunc rejects tokens whose algorithm is outside the allowed set before
// handing back the verification key.
func (s *Service) keyFunc(tok *jwt.Token) (any, error) {
	alg := ""
	if tok.Method != nil {
		alg = tok.Method.Alg()
	}
	for _, allowed := range s.allowed {
		if alg == allowed {
			return s.signingKey, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnexpectedSigningMethod, alg)
}

// translateParseError maps jwt library errors to package sentinels so callers
// never depend on library error types.
func translateParseError(err error) error {
	switch {
	case errors.Is(err, ErrUnexpectedSigningMethod):
		return errors.Join(ErrUnexpectedSigningMethod, err)
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return errors.Join(ErrMissingExpiration, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Join(ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return errors.Join(ErrInvalidSignature, err)
	default:
		return errors.Join(ErrMalformedToken, err)
	}
}

func claimsFromMap(m jwt.MapClaims) Claims {
	claims := Claims{}

	if sub, ok := m["sub"].(string); ok {
		claims.Subject = sub
	}
	if jti, ok := m["jti"].(string); ok {
		claims.TokenID = jti
	}
	if iat, err := m.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := m.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	for k, v := range m {
		if _, reserved := registeredClaims[k]; reserved {
			continue
		}
		if claims.Custom == nil {
			claims.Custom = make(map[string]any)
		}
		claims.Custom[k] = v
	}

	return claims
}
