// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/todosim/core/config"
//
//	type SimulationConfig struct {
//		SuccessRate float64       `env:"TODOSIM_SUCCESS_RATE" envDefault:"1.0"`
//		MaxLatency  time.Duration `env:"TODOSIM_MAX_LATENCY" envDefault:"1s"`
//	}
//
//	func main() {
//		var cfg SimulationConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 SimulationConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SimulationConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently, so each component can declare its
// own configuration struct without interfering with others.
package config
