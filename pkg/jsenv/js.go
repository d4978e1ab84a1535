//go:build js && wasm

package jsenv

import (
	"context"
	"errors"
	"syscall/js"
)

var ErrPromiseRejected = errors.New("jsenv: promise rejected")

func defined(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func stringProp(v js.Value, name string) string {
	if !defined(v) {
		return ""
	}
	p := v.Get(name)
	if p.Type() != js.TypeString {
		return ""
	}
	return p.String()
}

func intProp(v js.Value, name string) int {
	if !defined(v) {
		return 0
	}
	p := v.Get(name)
	if p.Type() != js.TypeNumber {
		return 0
	}
	return p.Int()
}

type settled struct {
	value js.Value
	err   error
}

// await blocks until promise settles or ctx is done. Callbacks are released
// once the promise settles, even when the caller stopped waiting.
func await(ctx context.Context, promise js.Value) (js.Value, error) {
	ch := make(chan settled, 1)

	onResolve := js.FuncOf(func(_ js.Value, args []js.Value) any {
		ch <- settled{value: firstArg(args)}
		return nil
	})
	onReject := js.FuncOf(func(_ js.Value, args []js.Value) any {
		reason := firstArg(args)
		msg := "unknown reason"
		if defined(reason) {
			msg = reason.Call("toString").String()
		}
		ch <- settled{err: errors.Join(ErrPromiseRejected, errors.New(msg))}
		return nil
	})
	release := func() {
		onResolve.Release()
		onReject.Release()
	}

	promise.Call("then", onResolve, onReject)

	select {
	case res := <-ch:
		release()
		return res.value, res.err
	case <-ctx.Done():
		go func() {
			<-ch
			release()
		}()
		return js.Undefined(), ctx.Err()
	}
}

func firstArg(args []js.Value) js.Value {
	if len(args) == 0 {
		return js.Undefined()
	}
	return args[0]
}
