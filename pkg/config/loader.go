package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry caches one configuration type. A failed parse is not cached, so the
// next Load retries.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cache            sync.Map // type name -> *entry
	defaultEnvLoaded sync.Once
)

// Load parses environment variables into v. Each configuration type is
// parsed once per process and later calls receive a copy of the cached value.
// Values already set in v act as defaults for fields with no env var.
//
// The default .env file is loaded on first use; a missing file is not an error.
//
//	type ServerConfig struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeName[T]()
	cached, _ := cache.LoadOrStore(key, &entry{})
	e := cached.(*entry)

	seed := *v
	e.once.Do(func() {
		if err := env.Parse(&seed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			cache.CompareAndDelete(key, e)
			return
		}
		e.value = seed
	})
	if e.err != nil {
		return e.err
	}

	value, ok := e.value.(T)
	if !ok {
		return ErrInvalidConfigType
	}
	*v = value
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration the
// process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment without
// overriding variables that are already set. With no paths it loads ".env".
// The default .env file is not loaded again by Load afterwards.
func LoadEnv(paths ...string) error {
	defaultEnvLoaded.Do(func() {})
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration. Intended for tests.
func Reset() {
	cache.Range(func(key, _ any) bool {
		cache.Delete(key)
		return true
	})
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
