package devicewatch

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/logger"
)

const (
	DefaultDebounce    = 100 * time.Millisecond
	DefaultSettleDelay = 100 * time.Millisecond
	DefaultBufferSize  = 4
)

// DetectFunc produces a snapshot from an environment.
type DetectFunc func(ctx context.Context, env device.Environment) (device.Info, error)

type config struct {
	debounce    time.Duration
	settleDelay time.Duration
	bufferSize  int
	logger      *slog.Logger
	detect      DetectFunc
}

func defaultConfig() config {
	return config{
		debounce:    DefaultDebounce,
		settleDelay: DefaultSettleDelay,
		bufferSize:  DefaultBufferSize,
		logger:      logger.Nop(),
		detect:      device.Detect,
	}
}

// Option configures a Watcher.
type Option func(*config)

// WithDebounce sets the resize coalescing window. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithSettleDelay sets the wait after an orientation change. Non-positive
// values are ignored.
func WithSettleDelay(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.settleDelay = d
		}
	}
}

// WithBufferSize sets the per-subscriber buffer.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithLogger sets the logger used for detection diagnostics. If nil, a noop
// logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDetector replaces device.Detect.
func WithDetector(fn DetectFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.detect = fn
		}
	}
}
