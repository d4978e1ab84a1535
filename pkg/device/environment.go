package device

import "context"

// Touch describes touch input support.
type Touch struct {
	// Events is true when the platform supports touch-start events.
	Events bool `json:"events" yaml:"events"`
	// MaxTouchPoints is the reported maximum number of simultaneous touches.
	MaxTouchPoints int `json:"maxTouchPoints" yaml:"maxTouchPoints"`
}

// Standalone describes whether the client runs as an installed app shell.
type Standalone struct {
	// DisplayMode is true when the standalone display-mode media query matches.
	DisplayMode bool `json:"displayMode" yaml:"displayMode"`
	// Navigator is the legacy navigator standalone flag.
	Navigator bool `json:"navigator" yaml:"navigator"`
}

// Environment exposes the ambient signals every client provides.
// Implementations must be safe to call from any goroutine.
type Environment interface {
	UserAgent() string
	Viewport() (width, height int)
	PixelRatio() float64
	Touch() Touch
	Standalone() Standalone
}

// Connection is the network information capability.
type Connection struct {
	Type          string `json:"type,omitempty" yaml:"type"`
	EffectiveType string `json:"effectiveType,omitempty" yaml:"effectiveType"`
}

// ConnectionReader is implemented by environments that expose network
// information. The boolean is false when the capability is missing.
type ConnectionReader interface {
	Connection() (Connection, bool)
}

// Battery is the battery status capability.
type Battery struct {
	Level    float64 `json:"level" yaml:"level"`
	Charging bool    `json:"charging" yaml:"charging"`
}

// BatteryReader is implemented by environments that expose battery status.
// Battery returns ErrBatteryUnavailable when the platform has no battery API.
type BatteryReader interface {
	Battery(ctx context.Context) (Battery, error)
}
