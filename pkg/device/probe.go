package device

import (
	"context"
	"math"
)

// Probe checks for an optional capability and reads it. The boolean is false
// when the capability is missing or could not be read; a probe never fails
// in any other way.
type Probe[T any] func(ctx context.Context, env Environment) (T, bool)

var (
	_ Probe[Connection] = ConnectionProbe
	_ Probe[Battery]    = BatteryProbe
)

// capability is the single place where optional interfaces are discovered.
func capability[C any](env Environment) (C, bool) {
	c, ok := env.(C)
	return c, ok
}

// ConnectionProbe reads network information when the environment exposes it.
func ConnectionProbe(_ context.Context, env Environment) (Connection, bool) {
	r, ok := capability[ConnectionReader](env)
	if !ok {
		return Connection{}, false
	}
	return r.Connection()
}

// BatteryProbe reads the battery status. Read errors and levels outside
// [0, 1] count as a missing capability.
func BatteryProbe(ctx context.Context, env Environment) (Battery, bool) {
	r, ok := capability[BatteryReader](env)
	if !ok {
		return Battery{}, false
	}
	b, err := r.Battery(ctx)
	if err != nil {
		return Battery{}, false
	}
	if math.IsNaN(b.Level) || b.Level < 0 || b.Level > 1 {
		return Battery{}, false
	}
	return b, true
}

// DetectNetwork returns the connection type and effective type. Both are nil
// when the capability is missing; each is nil when the platform leaves it empty.
func DetectNetwork(ctx context.Context, env Environment) (connectionType, effectiveType *string) {
	conn, ok := ConnectionProbe(ctx, env)
	if !ok {
		return nil, nil
	}
	return optionalString(conn.Type), optionalString(conn.EffectiveType)
}

// DetectBattery returns the battery level and charging state, both nil when
// the capability is missing or fails.
func DetectBattery(ctx context.Context, env Environment) (level *float64, charging *bool) {
	b, ok := BatteryProbe(ctx, env)
	if !ok {
		return nil, nil
	}
	return &b.Level, &b.Charging
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
