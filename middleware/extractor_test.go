package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authguard/middleware"
)

func TestFromCookie(t *testing.T) {
	t.Parallel()

	extract := middleware.FromCookie("auth_token")

	t.Run("present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok-A"})

		raw, err := extract(r)
		require.NoError(t, err)
		assert.Equal(t, "tok-A", raw)
	})

	t.Run("value with embedded equals survives", func(t *testing.T) {
		t.Parallel()

		// JWT-ish value containing base64 padding; must not be truncated.
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Cookie", "auth_token=aGVhZGVy.cGF5bG9hZA==.c2ln; other=1")

		raw, err := extract(r)
		require.NoError(t, err)
		assert.Equal(t, "aGVhZGVy.cGF5bG9hZA==.c2ln", raw)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: ""})

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})
}

func TestFromAuthHeader(t *testing.T) {
	t.Parallel()

	extract := middleware.FromAuthHeader()

	t.Run("bearer token", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer tok-B")

		raw, err := extract(r)
		require.NoError(t, err)
		assert.Equal(t, "tok-B", raw)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})

	t.Run("missing scheme separator", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "BearerXYZ")

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrInvalidAuthScheme)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrInvalidAuthScheme)
	})

	t.Run("bearer with empty token", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer ")

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})
}

func TestDefaultExtractorPrecedence(t *testing.T) {
	t.Parallel()

	extract := middleware.DefaultExtractor()

	t.Run("cookie wins over header", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "auth_token", Value: "tok-A"})
		r.Header.Set("Authorization", "Bearer tok-B")

		raw, err := extract(r)
		require.NoError(t, err)
		assert.Equal(t, "tok-A", raw)
	})

	t.Run("header when cookie absent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer tok-B")

		raw, err := extract(r)
		require.NoError(t, err)
		assert.Equal(t, "tok-B", raw)
	})

	t.Run("neither present", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})

	t.Run("malformed header reported when cookie absent", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "BearerXYZ")

		_, err := extract(r)
		assert.ErrorIs(t, err, middleware.ErrInvalidAuthScheme)
		assert.ErrorIs(t, err, middleware.ErrNoToken)
	})
}
