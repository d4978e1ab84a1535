package device

import "context"

// Signals is an Environment holding every ambient input as a plain value.
// Connection and Battery are optional capabilities: nil means missing.
type Signals struct {
	UserAgent  string      `json:"userAgent" yaml:"userAgent"`
	Width      int         `json:"width" yaml:"width"`
	Height     int         `json:"height" yaml:"height"`
	PixelRatio float64     `json:"pixelRatio" yaml:"pixelRatio"`
	Touch      Touch       `json:"touch" yaml:"touch"`
	Standalone Standalone  `json:"standalone" yaml:"standalone"`
	Connection *Connection `json:"connection,omitempty" yaml:"connection,omitempty"`
	Battery    *Battery    `json:"battery,omitempty" yaml:"battery,omitempty"`
}

// Env returns an Environment view of s. Optional capabilities are exposed
// only when set.
func (s Signals) Env() Environment {
	base := signalsEnv{s: s}
	switch {
	case s.Connection != nil && s.Battery != nil:
		return fullEnv{signalsEnv: base}
	case s.Connection != nil:
		return connectionEnv{signalsEnv: base}
	case s.Battery != nil:
		return batteryEnv{signalsEnv: base}
	default:
		return base
	}
}

type signalsEnv struct{ s Signals }

func (e signalsEnv) UserAgent() string         { return e.s.UserAgent }
func (e signalsEnv) PixelRatio() float64       { return e.s.PixelRatio }
func (e signalsEnv) Touch() Touch              { return e.s.Touch }
func (e signalsEnv) Standalone() Standalone    { return e.s.Standalone }
func (e signalsEnv) Viewport() (int, int)      { return max(e.s.Width, 0), max(e.s.Height, 0) }
func (e signalsEnv) connection() Connection    { return *e.s.Connection }
func (e signalsEnv) battery() (Battery, error) { return *e.s.Battery, nil }

type connectionEnv struct{ signalsEnv }

func (e connectionEnv) Connection() (Connection, bool) { return e.connection(), true }

type batteryEnv struct{ signalsEnv }

func (e batteryEnv) Battery(context.Context) (Battery, error) { return e.battery() }

type fullEnv struct{ signalsEnv }

func (e fullEnv) Connection() (Connection, bool)           { return e.connection(), true }
func (e fullEnv) Battery(context.Context) (Battery, error) { return e.battery() }
