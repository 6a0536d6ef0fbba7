package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/todosim/core/config"
)

// Each test declares its own config type because loaded values are cached
// by type for the lifetime of the process.

func TestLoadDefaults(t *testing.T) {
	type defaultsConfig struct {
		Rate  float64       `env:"CONFIG_TEST_UNSET_RATE" envDefault:"1.0"`
		Delay time.Duration `env:"CONFIG_TEST_UNSET_DELAY" envDefault:"250ms"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 1.0, cfg.Rate)
	assert.Equal(t, 250*time.Millisecond, cfg.Delay)
}

func TestLoadFromEnvironment(t *testing.T) {
	type envConfig struct {
		Rate  float64       `env:"CONFIG_TEST_RATE" envDefault:"1.0"`
		Delay time.Duration `env:"CONFIG_TEST_DELAY" envDefault:"1s"`
	}

	t.Setenv("CONFIG_TEST_RATE", "0.75")
	t.Setenv("CONFIG_TEST_DELAY", "300ms")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 0.75, cfg.Rate)
	assert.Equal(t, 300*time.Millisecond, cfg.Delay)
}

func TestLoadCachesByType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"CONFIG_TEST_CACHED" envDefault:"first"`
	}

	t.Setenv("CONFIG_TEST_CACHED", "first")

	var cfg1 cachedConfig
	require.NoError(t, config.Load(&cfg1))
	require.Equal(t, "first", cfg1.Value)

	// Changing the environment after the first load has no effect.
	t.Setenv("CONFIG_TEST_CACHED", "second")

	var cfg2 cachedConfig
	require.NoError(t, config.Load(&cfg2))
	assert.Equal(t, cfg1, cfg2)
}

func TestLoadNil(t *testing.T) {
	type nilConfig struct {
		Value string `env:"CONFIG_TEST_NIL"`
	}

	var cfg *nilConfig
	err := config.Load(cfg)
	require.ErrorIs(t, err, config.ErrNilConfig)
}

func TestLoadParseError(t *testing.T) {
	type brokenConfig struct {
		Delay time.Duration `env:"CONFIG_TEST_BROKEN_DELAY"`
	}

	t.Setenv("CONFIG_TEST_BROKEN_DELAY", "not-a-duration")

	var cfg brokenConfig
	require.Error(t, config.Load(&cfg))
}

func TestMustLoadPanics(t *testing.T) {
	type panicConfig struct {
		Delay time.Duration `env:"CONFIG_TEST_PANIC_DELAY"`
	}

	t.Setenv("CONFIG_TEST_PANIC_DELAY", "broken")

	var cfg panicConfig
	require.Panics(t, func() { config.MustLoad(&cfg) })
}
