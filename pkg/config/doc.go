// Package config provides a small, type-safe loader for environment-based
// configuration.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file in the working directory is loaded once per
// process (missing files are ignored), and the environment is then parsed
// into any Go struct via `env` field tags.
//
// # Usage
//
//	type BusConfig struct {
//		BufferSize int `env:"NOTIFY_BUS_BUFFER" envDefault:"16"`
//	}
//
//	var cfg BusConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot run without.
package config
