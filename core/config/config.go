package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	cache      sync.Map // reflect.Type -> loaded config value
	dotenvOnce sync.Once
)

// Load populates cfg from environment variables and caches the result by type.
// Subsequent calls with the same type return the cached value without touching
// the environment again. The first Load in the process attempts to read a .env
// file; a missing file is not an error since the environment may be set
// externally.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(t); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", t.Name(), err)
	}

	cache.Store(t, *cfg)
	return nil
}

// MustLoad is like Load but panics on failure. Useful during application
// startup where a broken configuration should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
