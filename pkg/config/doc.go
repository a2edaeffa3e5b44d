// Package config loads configuration structs from environment variables,
// optionally seeded from a .env file.
//
// Each configuration type is parsed once per process and cached, so
// scattered Load calls for the same struct are cheap and always agree.
// Struct fields are bound with caarlos0/env tags:
//
//	type BinderConfig struct {
//	    DebounceInterval time.Duration `env:"FORMBIND_DEBOUNCE_INTERVAL" envDefault:"1s"`
//	}
//
//	var cfg BinderConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot
// start without.
package config
