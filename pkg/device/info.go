package device

import "log/slog"

// Info is an immutable snapshot of the detected environment. It is replaced
// wholesale on every detection, never updated field by field.
type Info struct {
	DeviceType DeviceType `json:"deviceType"`
	IsMobile   bool       `json:"isMobile"`
	IsTablet   bool       `json:"isTablet"`
	IsDesktop  bool       `json:"isDesktop"`

	OS             OS      `json:"os"`
	OSVersion      string  `json:"osVersion,omitempty"`
	Browser        Browser `json:"browser"`
	BrowserVersion string  `json:"browserVersion,omitempty"`

	// ScreenSize and Breakpoint always hold the same tier.
	ScreenSize Breakpoint `json:"screenSize"`
	Breakpoint Breakpoint `json:"breakpoint"`

	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Orientation Orientation `json:"orientation"`

	IsTouch      bool `json:"isTouch"`
	IsRetina     bool `json:"isRetina"`
	IsStandalone bool `json:"isStandalone"`

	// Optional capability fields are nil when the capability is missing.
	ConnectionType          *string  `json:"connectionType,omitempty"`
	EffectiveConnectionType *string  `json:"effectiveConnectionType,omitempty"`
	BatteryLevel            *float64 `json:"batteryLevel,omitempty"`
	IsCharging              *bool    `json:"isCharging,omitempty"`
}

// Fallback returns the snapshot used when no environment is available:
// desktop, unknown OS and browser, 1024x768, lg, landscape, no touch.
func Fallback() Info {
	info := sized(FallbackWidth, FallbackHeight)
	info.OS = OSUnknown
	info.Browser = BrowserUnknown
	return info
}

// sized fills every width-derived field from one viewport reading.
func sized(width, height int) Info {
	width, height = max(width, 0), max(height, 0)
	deviceType := DetectDeviceType(width)
	size := DetectScreenSize(width)
	return Info{
		DeviceType:  deviceType,
		IsMobile:    deviceType == DeviceTypeMobile,
		IsTablet:    deviceType == DeviceTypeTablet,
		IsDesktop:   deviceType == DeviceTypeDesktop,
		ScreenSize:  size,
		Breakpoint:  size,
		Width:       width,
		Height:      height,
		Orientation: DetectOrientation(width, height),
	}
}

// Equal reports whether two snapshots are field-for-field equal, comparing
// optional fields by value.
func (i Info) Equal(o Info) bool {
	a, b := i, o
	if !equalPtr(a.ConnectionType, b.ConnectionType) ||
		!equalPtr(a.EffectiveConnectionType, b.EffectiveConnectionType) ||
		!equalPtr(a.BatteryLevel, b.BatteryLevel) ||
		!equalPtr(a.IsCharging, b.IsCharging) {
		return false
	}
	a.ConnectionType, b.ConnectionType = nil, nil
	a.EffectiveConnectionType, b.EffectiveConnectionType = nil, nil
	a.BatteryLevel, b.BatteryLevel = nil, nil
	a.IsCharging, b.IsCharging = nil, nil
	return a == b
}

// LogValue implements slog.LogValuer.
func (i Info) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("device_type", string(i.DeviceType)),
		slog.String("os", string(i.OS)),
		slog.String("browser", string(i.Browser)),
		slog.String("breakpoint", string(i.Breakpoint)),
		slog.Int("width", i.Width),
		slog.Int("height", i.Height),
		slog.String("orientation", string(i.Orientation)),
	)
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
