// Package device classifies the runtime environment of a client: device class,
// operating system, browser, responsive breakpoint, orientation, capabilities,
// network and battery.
//
// Detection works on ambient signals exposed through the Environment interface
// (user agent, viewport, pixel ratio, touch and standalone signals) plus optional
// capabilities probed through ConnectionReader and BatteryReader. Every detector
// is a pure function of its inputs; Detect composes them into one Info snapshot.
//
// Unknown values are a regular outcome. An unrecognised user agent yields
// OSUnknown and BrowserUnknown, a missing capability yields absent (nil) optional
// fields. When no environment is available at all, Detect returns the Fallback
// snapshot.
//
// # Architecture
//
//	Environment ──▶ Detect ──┬──▶ DetectOS / DetectBrowser     (user agent)
//	                         ├──▶ DetectDeviceType             (width)
//	                         ├──▶ DetectScreenSize             (width)
//	                         ├──▶ DetectOrientation            (width, height)
//	                         ├──▶ DetectCapabilities           (touch, dpr, standalone)
//	                         ├──▶ ConnectionProbe              (optional)
//	                         └──▶ BatteryProbe (async future)  (optional)
//
// The viewport is read exactly once per Detect call, so DeviceType, ScreenSize
// and Orientation always agree within one snapshot.
//
// DeviceType and ScreenSize are independent classifications. They share the
// 768px boundary but neither is derived from the other.
//
// # Usage
//
//	info, err := device.Detect(ctx, env)
//	if err != nil {
//	    // only on context cancellation; info is the fallback snapshot
//	}
//	if info.IsMobile && info.Breakpoint == device.BreakpointSM {
//	    // ...
//	}
//
// Signals holds plain values for tools and tests. Its Env method returns the
// matching Environment:
//
//	info, _ := device.Detect(ctx, device.Signals{
//	    UserAgent:  ua,
//	    Width:      390,
//	    Height:     844,
//	    PixelRatio: 3,
//	}.Env())
//
// # Error Handling
//
// Detect only returns ErrDetectionFailed (joined with the context error or a
// recovered panic). BatteryReader implementations report ErrBatteryUnavailable
// when the platform has no battery API.
package device
