package device

import "errors"

var (
	ErrDetectionFailed    = errors.New("device detection failed")
	ErrBatteryUnavailable = errors.New("battery capability unavailable")
	ErrUnknownBreakpoint  = errors.New("unknown breakpoint")
)
