package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/iconkit/pkg/memo"
)

var (
	cacheMu sync.RWMutex
	cache   = new(memo.Map[any])

	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. Each configuration type is parsed
// once per process; later calls copy the cached value.
//
// The default .env file in the working directory is loaded on first use when
// present. Variables already set in the environment take precedence.
//
// Example:
//
//	type ServerConfig struct {
//		Addr   string `env:"ICONKIT_ADDR" envDefault:":8080"`
//		Source string `env:"ICONKIT_SOURCE" envDefault:"embed"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Missing .env is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	cacheMu.RLock()
	c := cache
	cacheMu.RUnlock()

	cached, err := c.GetOrLoad(typeName[T](), func() (any, error) {
		var fresh T
		if err := env.Parse(&fresh); err != nil {
			return nil, errors.Join(ErrParsingConfig, err)
		}
		return fresh, nil
	})
	if err != nil {
		return err
	}

	value, ok := cached.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = value
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// Parse parses environment variables into v without touching the cache.
// A non-empty prefix is prepended to every variable name.
func Parse[T any](v *T, prefix string) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.ParseWithOptions(v, env.Options{Prefix: prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// LoadEnv loads the given .env files into the process environment, falling
// back to ".env" when none are given. Existing variables are not overwritten.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cacheMu.Lock()
	cache = new(memo.Map[any])
	cacheMu.Unlock()
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
