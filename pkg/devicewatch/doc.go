// Package devicewatch keeps one live device.Info snapshot in sync with a
// changing environment.
//
// A Watcher owns exactly one snapshot. New seeds it with device.Fallback so
// readers never block; Start launches the first real detection in the
// background and attaches to the environment's resize and orientation-change
// events when it implements EventSource. Close detaches the listeners, stops
// pending timers and waits for in-flight detections.
//
// Triggers:
//
//	resize             debounced, default 100ms; only the trailing event of a burst detects
//	orientationchange  waits a settle delay, default 100ms, then detects
//	Refresh            detects immediately
//
// Every detection takes a sequence token. A result is applied only when its
// token is still the latest one issued, so a slow detection can never
// overwrite a newer snapshot. A failed detection is logged and the previous
// snapshot stays in place; consumers never see detection errors.
//
// State derives the convenience booleans (IsLandscape, IsXS, IsApple, ...) from
// the current snapshot on every call, so they can never go stale.
//
// # Usage
//
//	w := devicewatch.New(env, devicewatch.WithLogger(log))
//	if err := w.Start(ctx); err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	sub := w.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//	    render(devicewatch.Derive(msg.Data))
//	}
package devicewatch
