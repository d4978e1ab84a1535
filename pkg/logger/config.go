package logger

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/cardkit/pkg/environment"
)

// Config holds logger settings loaded from the environment. Empty fields
// keep the stage defaults.
type Config struct {
	Level  string `env:"LOG_LEVEL"`
	Format Format `env:"LOG_FORMAT"`
}

// NewFromConfig creates a logger with the stage defaults of env, overridden
// by cfg. extra options are applied last.
func NewFromConfig(env environment.Environment, service string, cfg Config, extra ...Option) (*slog.Logger, error) {
	opts := []Option{WithEnvironment(env, service)}

	if cfg.Level != "" {
		level, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}
	switch cfg.Format {
	case "":
	case FormatJSON, FormatText:
		opts = append(opts, WithFormat(cfg.Format))
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	return New(append(opts, extra...)...), nil
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
