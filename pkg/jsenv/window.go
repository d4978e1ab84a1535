//go:build js && wasm

package jsenv

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/devicewatch"
)

// Window is the browser environment.
type Window struct {
	global js.Value
}

var (
	_ device.Environment      = (*Window)(nil)
	_ device.ConnectionReader = (*Window)(nil)
	_ device.BatteryReader    = (*Window)(nil)
	_ devicewatch.EventSource = (*Window)(nil)
)

// Available reports whether a window object exists. It is false in workers.
func Available() bool {
	return defined(js.Global().Get("window"))
}

// New returns the environment of the current window.
func New() *Window {
	return &Window{global: js.Global().Get("window")}
}

func (w *Window) navigator() js.Value { return w.global.Get("navigator") }

func (w *Window) UserAgent() string {
	return stringProp(w.navigator(), "userAgent")
}

func (w *Window) Viewport() (int, int) {
	return intProp(w.global, "innerWidth"), intProp(w.global, "innerHeight")
}

func (w *Window) PixelRatio() float64 {
	v := w.global.Get("devicePixelRatio")
	if v.Type() != js.TypeNumber {
		return 1
	}
	return v.Float()
}

func (w *Window) Touch() device.Touch {
	return device.Touch{
		Events:         js.Global().Get("Reflect").Call("has", w.global, "ontouchstart").Bool(),
		MaxTouchPoints: intProp(w.navigator(), "maxTouchPoints"),
	}
}

func (w *Window) Standalone() device.Standalone {
	var displayMode bool
	if matchMedia := w.global.Get("matchMedia"); matchMedia.Type() == js.TypeFunction {
		displayMode = w.global.Call("matchMedia", "(display-mode: standalone)").Get("matches").Truthy()
	}
	return device.Standalone{
		DisplayMode: displayMode,
		Navigator:   w.navigator().Get("standalone").Truthy(),
	}
}

// Connection reads navigator.connection.
func (w *Window) Connection() (device.Connection, bool) {
	conn := w.navigator().Get("connection")
	if !defined(conn) {
		return device.Connection{}, false
	}
	return device.Connection{
		Type:          stringProp(conn, "type"),
		EffectiveType: stringProp(conn, "effectiveType"),
	}, true
}

// Battery awaits navigator.getBattery().
func (w *Window) Battery(ctx context.Context) (device.Battery, error) {
	nav := w.navigator()
	if nav.Get("getBattery").Type() != js.TypeFunction {
		return device.Battery{}, device.ErrBatteryUnavailable
	}
	manager, err := await(ctx, nav.Call("getBattery"))
	if err != nil {
		return device.Battery{}, fmt.Errorf("get battery: %w", err)
	}
	level := manager.Get("level")
	if level.Type() != js.TypeNumber {
		return device.Battery{}, device.ErrBatteryUnavailable
	}
	return device.Battery{
		Level:    level.Float(),
		Charging: manager.Get("charging").Truthy(),
	}, nil
}

// Listen attaches resize and orientationchange listeners to the window and
// removes them when ctx is done.
func (w *Window) Listen(ctx context.Context) <-chan devicewatch.Event {
	out := make(chan devicewatch.Event, 16)
	kinds := []devicewatch.EventKind{devicewatch.EventResize, devicewatch.EventOrientationChange}

	handlers := make([]js.Func, len(kinds))
	for i, kind := range kinds {
		ev := devicewatch.Event{Kind: kind}
		handlers[i] = js.FuncOf(func(js.Value, []js.Value) any {
			select {
			case out <- ev:
			default:
			}
			return nil
		})
		w.global.Call("addEventListener", string(kind), handlers[i])
	}

	go func() {
		<-ctx.Done()
		for i, kind := range kinds {
			w.global.Call("removeEventListener", string(kind), handlers[i])
			handlers[i].Release()
		}
		close(out)
	}()

	return out
}
