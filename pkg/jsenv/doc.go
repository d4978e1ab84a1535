// Package jsenv exposes the browser as a device.Environment when the module
// is compiled to WebAssembly (GOOS=js GOARCH=wasm).
//
// Window reads navigator, window and matchMedia on every call, so each
// detection sees the live values. It also implements the optional
// device.ConnectionReader and device.BatteryReader capabilities and
// devicewatch.EventSource for resize and orientationchange events.
//
//	var env device.Environment
//	if jsenv.Available() {
//	    env = jsenv.New()
//	}
//	w := devicewatch.New(env)
package jsenv
