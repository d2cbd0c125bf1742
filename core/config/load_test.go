package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authguard/core/config"
)

// Each test uses its own struct type: the loader caches per type, so sharing
// a type across tests would leak values between them.

func TestLoad(t *testing.T) {
	t.Run("populates fields from environment", func(t *testing.T) {
		type serverConfig struct {
			Host string `env:"TEST_LOAD_HOST" envDefault:"localhost"`
			Port int    `env:"TEST_LOAD_PORT" envDefault:"8080"`
		}

		t.Setenv("TEST_LOAD_HOST", "example.com")
		t.Setenv("TEST_LOAD_PORT", "9090")

		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "example.com", cfg.Host)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("applies defaults", func(t *testing.T) {
		type defaultsConfig struct {
			Host string `env:"TEST_LOAD_DEFAULT_HOST" envDefault:"localhost"`
		}

		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
	})

	t.Run("caches per type", func(t *testing.T) {
		type cachedConfig struct {
			Value string `env:"TEST_LOAD_CACHED"`
		}

		t.Setenv("TEST_LOAD_CACHED", "first")
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		require.Equal(t, "first", first.Value)

		t.Setenv("TEST_LOAD_CACHED", "second")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "first", second.Value)
	})

	t.Run("missing required variable", func(t *testing.T) {
		type requiredConfig struct {
			Key string `env:"TEST_LOAD_REQUIRED_KEY,required"`
		}

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParseFailed)
	})

	t.Run("nil config", func(t *testing.T) {
		assert.ErrorIs(t, config.Load(nil), config.ErrNilConfig)
	})

	t.Run("non-pointer", func(t *testing.T) {
		type plainConfig struct{}
		assert.ErrorIs(t, config.Load(plainConfig{}), config.ErrNotStructPointer)
	})

	t.Run("pointer to non-struct", func(t *testing.T) {
		value := "not a struct"
		assert.ErrorIs(t, config.Load(&value), config.ErrNotStructPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns populated config", func(t *testing.T) {
		type mustConfig struct {
			Name string `env:"TEST_MUSTLOAD_NAME" envDefault:"authguard"`
		}

		var cfg mustConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "authguard", cfg.Name)
	})

	t.Run("panics on failure", func(t *testing.T) {
		type brokenConfig struct {
			Key string `env:"TEST_MUSTLOAD_MISSING,required"`
		}

		var cfg brokenConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
