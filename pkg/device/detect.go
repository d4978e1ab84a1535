package device

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/cardkit/pkg/async"
)

type batteryReading struct {
	battery Battery
	ok      bool
}

// Detect builds a snapshot from env. A nil env yields Fallback.
//
// The viewport is read once. The battery probe starts first and runs
// concurrently with the synchronous detectors. Detect returns an error only
// when ctx is done or env panics; the returned Info is then Fallback.
func Detect(ctx context.Context, env Environment) (info Info, err error) {
	if env == nil {
		return Fallback(), nil
	}
	if err := ctx.Err(); err != nil {
		return Fallback(), errors.Join(ErrDetectionFailed, err)
	}

	defer func() {
		if r := recover(); r != nil {
			info = Fallback()
			err = fmt.Errorf("%w: panic: %v", ErrDetectionFailed, r)
		}
	}()

	battery := async.Async(ctx, env, func(ctx context.Context, env Environment) (batteryReading, error) {
		b, ok := BatteryProbe(ctx, env)
		return batteryReading{battery: b, ok: ok}, nil
	})

	width, height := env.Viewport()
	info = sized(width, height)

	ua := env.UserAgent()
	info.OS, info.OSVersion = DetectOS(ua)
	info.Browser, info.BrowserVersion = DetectBrowser(ua)

	caps := DetectCapabilities(env)
	info.IsTouch = caps.IsTouch
	info.IsRetina = caps.IsRetina
	info.IsStandalone = caps.IsStandalone

	info.ConnectionType, info.EffectiveConnectionType = DetectNetwork(ctx, env)

	reading, err := battery.AwaitContext(ctx)
	switch {
	case err == nil:
		if reading.ok {
			info.BatteryLevel = &reading.battery.Level
			info.IsCharging = &reading.battery.Charging
		}
	case ctx.Err() != nil:
		return Fallback(), errors.Join(ErrDetectionFailed, ctx.Err())
	default:
		// A panicking battery reader degrades to an absent capability.
	}

	return info, nil
}
