//go:build js && wasm

// Command devicewasm runs the device watcher inside the browser and exposes
// it to page scripts as globalThis.cardkitDevice:
//
//	cardkitDevice.state()                  current state object
//	cardkitDevice.refresh()                Promise resolving to the refreshed state
//	cardkitDevice.getBreakpointValue(tier) minimum width in px, or undefined
//	cardkitDevice.close()                  detach listeners and stop
//
// Each snapshot change is dispatched on window as a "cardkit:device"
// CustomEvent whose detail is the state object.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/dmitrymomot/cardkit/pkg/broadcast"
	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/devicewatch"
	"github.com/dmitrymomot/cardkit/pkg/jsenv"
	"github.com/dmitrymomot/cardkit/pkg/logger"
)

const (
	globalName = "cardkitDevice"
	eventName  = "cardkit:device"
)

func main() {
	log := logger.New(
		logger.WithTextFormatter(),
		logger.WithOutput(os.Stdout),
		logger.WithLevel(slog.LevelInfo),
		logger.WithAttr(slog.String("service", "cardkit-device")),
	)

	var env device.Environment
	if jsenv.Available() {
		env = jsenv.New()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := devicewatch.New(env, devicewatch.WithLogger(log))
	sub := w.Subscribe(ctx)
	if err := w.Start(ctx); err != nil {
		log.Error("failed to start device watcher", logger.Error(err))
		return
	}

	funcs := export(ctx, cancel, w)
	go publish(ctx, sub)

	<-ctx.Done()

	_ = w.Close()
	js.Global().Delete(globalName)
	for _, fn := range funcs {
		fn.Release()
	}
}

func export(ctx context.Context, stop context.CancelFunc, w *devicewatch.Watcher) []js.Func {
	state := js.FuncOf(func(js.Value, []js.Value) any {
		return toJS(w.State())
	})

	refresh := js.FuncOf(func(js.Value, []js.Value) any {
		executor := js.FuncOf(func(_ js.Value, args []js.Value) any {
			resolve := args[0]
			go func() {
				resolve.Invoke(toJS(devicewatch.Derive(w.Refresh(ctx))))
			}()
			return nil
		})
		defer executor.Release()
		return js.Global().Get("Promise").New(executor)
	})

	breakpointValue := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 || args[0].Type() != js.TypeString {
			return js.Undefined()
		}
		tier, err := device.ParseBreakpoint(args[0].String())
		if err != nil {
			return js.Undefined()
		}
		v, _ := w.BreakpointValue(tier)
		return v
	})

	closeFn := js.FuncOf(func(js.Value, []js.Value) any {
		stop()
		return nil
	})

	api := js.Global().Get("Object").New()
	api.Set("state", state)
	api.Set("refresh", refresh)
	api.Set("getBreakpointValue", breakpointValue)
	api.Set("close", closeFn)
	js.Global().Set(globalName, api)

	return []js.Func{state, refresh, breakpointValue, closeFn}
}

// publish dispatches every snapshot change as a DOM event.
func publish(ctx context.Context, sub broadcast.Subscriber[device.Info]) {
	defer sub.Close()

	window := js.Global().Get("window")
	if window.IsUndefined() {
		return
	}
	ctor := js.Global().Get("CustomEvent")
	for msg := range sub.Receive(ctx) {
		init := js.Global().Get("Object").New()
		init.Set("detail", toJS(devicewatch.Derive(msg.Data)))
		window.Call("dispatchEvent", ctor.New(eventName, init))
	}
}

func toJS(state devicewatch.State) js.Value {
	raw, err := json.Marshal(state)
	if err != nil {
		return js.Undefined()
	}
	return js.Global().Get("JSON").Call("parse", string(raw))
}
