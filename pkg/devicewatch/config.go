package devicewatch

import (
	"time"

	"github.com/dmitrymomot/cardkit/pkg/device"
)

// Config holds watcher tunables loaded from the environment.
type Config struct {
	Debounce    time.Duration `env:"DEVICE_DEBOUNCE" envDefault:"100ms"`
	SettleDelay time.Duration `env:"DEVICE_SETTLE_DELAY" envDefault:"100ms"`
	BufferSize  int           `env:"DEVICE_SUBSCRIBER_BUFFER" envDefault:"4"`
}

// NewFromConfig creates a Watcher using cfg. Additional options are applied
// after the config values.
func NewFromConfig(env device.Environment, cfg Config, opts ...Option) *Watcher {
	configOpts := make([]Option, 0, 3+len(opts))
	configOpts = append(configOpts,
		WithDebounce(cfg.Debounce),
		WithSettleDelay(cfg.SettleDelay),
		WithBufferSize(cfg.BufferSize),
	)
	configOpts = append(configOpts, opts...)
	return New(env, configOpts...)
}
