package device

import (
	"fmt"
	"strings"
)

// Tier is one row of the breakpoint table.
type Tier struct {
	Name     Breakpoint `json:"name" yaml:"name"`
	MinWidth int        `json:"minWidth" yaml:"minWidth"`
}

// breakpoints is ascending by MinWidth.
var breakpoints = [...]Tier{
	{Name: BreakpointXS, MinWidth: 0},
	{Name: BreakpointSM, MinWidth: 640},
	{Name: BreakpointMD, MinWidth: 768},
	{Name: BreakpointLG, MinWidth: 1024},
	{Name: BreakpointXL, MinWidth: 1280},
	{Name: Breakpoint2XL, MinWidth: 1536},
}

// Breakpoints returns a copy of the breakpoint table in ascending order.
func Breakpoints() []Tier {
	out := make([]Tier, len(breakpoints))
	copy(out, breakpoints[:])
	return out
}

// BreakpointValue returns the minimum width of the tier.
func BreakpointValue(tier Breakpoint) (int, bool) {
	for _, t := range breakpoints {
		if t.Name == tier {
			return t.MinWidth, true
		}
	}
	return 0, false
}

// ParseBreakpoint converts a case-insensitive tier name into a Breakpoint.
func ParseBreakpoint(s string) (Breakpoint, error) {
	name := Breakpoint(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := BreakpointValue(name); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownBreakpoint, s)
	}
	return name, nil
}

// DetectScreenSize returns the highest tier whose minimum width is not greater
// than width.
func DetectScreenSize(width int) Breakpoint {
	size := BreakpointXS
	for _, t := range breakpoints {
		if t.MinWidth > width {
			break
		}
		size = t.Name
	}
	return size
}

// DetectDeviceType classifies the device by viewport width alone.
func DetectDeviceType(width int) DeviceType {
	switch {
	case width < TabletMinWidth:
		return DeviceTypeMobile
	case width < DesktopMinWidth:
		return DeviceTypeTablet
	default:
		return DeviceTypeDesktop
	}
}

// DetectOrientation reports landscape only when width is strictly greater
// than height.
func DetectOrientation(width, height int) Orientation {
	if width > height {
		return OrientationLandscape
	}
	return OrientationPortrait
}
