package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration structs keyed by their type so that
// each unique config type is only loaded once per process.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
}

var (
	globalCache = &configCache{
		values: make(map[string]any),
	}

	defaultEnvLoaded sync.Once
)

// LoadEnv loads one or more .env files into the process environment before
// any config struct is parsed. Later files take precedence over earlier ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return godotenv.Load()
	}
	for _, path := range paths {
		if err := godotenv.Overload(path); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}

// Load populates the provided configuration struct from environment
// variables based on `env` field tags. The default .env file is loaded on the
// first call if present. Each config type is parsed once; subsequent calls
// return the cached value.
//
// Example:
//
//	type SessionConfig struct {
//		CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
//		Secret     string `env:"SESSION_SECRET,required"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	globalCache.mu.RLock()
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
		globalCache.mu.RUnlock()
		return nil
	}
	globalCache.mu.RUnlock()

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	globalCache.mu.Lock()
	// Another goroutine may have parsed concurrently; the stored copy wins
	if cached, ok := globalCache.values[typeName]; ok {
		*v = cached.(T)
	} else {
		globalCache.values[typeName] = *v
	}
	globalCache.mu.Unlock()

	return nil
}

// MustLoad works like Load but panics if configuration loading fails. Useful
// for configurations required for the application to start at all.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ResetCache clears all cached configurations. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.values = make(map[string]any)
	globalCache.mu.Unlock()
}

// getTypeName returns a string identifier for the generic type T.
func getTypeName[T any]() string {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		return fmt.Sprintf("%T", *new(T))
	}
	return t.String()
}
