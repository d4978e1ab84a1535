// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file is loaded once, on first use, when present;
//   - LoadEnv loads additional .env files explicitly;
//   - Load parses the environment into any struct annotated with env tags
//     and caches the result per type, so each struct is parsed once;
//   - a failed parse is not cached, the next Load tries again.
//
// # Usage
//
//	type ContactConfig struct {
//	    Inbox string `env:"SUPPORT_INBOX,required"`
//	}
//
//	var cfg ContactConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Reset clears the cache between tests.
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrLoadingEnvFile: an explicit .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load or MustLoad.
//   - ErrInvalidConfigType: cached value does not match the requested type.
package config
