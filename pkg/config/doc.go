// Package config loads application configuration from environment variables
// into tagged structs.
//
// Load builds on github.com/caarlos0/env for struct parsing and
// github.com/joho/godotenv for local development: the first Load call reads
// an optional .env file from the working directory, after which the process
// environment is parsed into the supplied struct.
//
//	type AppConfig struct {
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// MustLoad panics on failure and is intended for configuration the
// application cannot start without.
package config
