// Package config loads typed configuration from environment variables.
//
// Structs are described with caarlos0/env field tags. Load parses each
// configuration type once per process and hands out copies afterwards; Parse
// skips the cache and supports a variable prefix. Optional .env files are read
// through joho/godotenv.
//
//	type Config struct {
//		Source string `env:"ICONKIT_SOURCE" envDefault:"embed"`
//		Dir    string `env:"ICONKIT_DIR"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Reset clears the cache so tests can reload a type after changing variables.
package config
