package device

// DeviceType is the coarse device class derived from viewport width.
type DeviceType string

// Device types.
const (
	DeviceTypeMobile  DeviceType = "mobile"
	DeviceTypeTablet  DeviceType = "tablet"
	DeviceTypeDesktop DeviceType = "desktop"
)

// OS identifies the operating system family.
type OS string

// Operating systems.
const (
	OSAndroid OS = "android"
	OSIOS     OS = "ios"
	OSWindows OS = "windows"
	OSMac     OS = "mac"
	OSLinux   OS = "linux"
	OSUnknown OS = "unknown"
)

// Browser identifies the browser family.
type Browser string

// Browsers.
const (
	BrowserChrome  Browser = "chrome"
	BrowserFirefox Browser = "firefox"
	BrowserSafari  Browser = "safari"
	BrowserEdge    Browser = "edge"
	BrowserOpera   Browser = "opera"
	BrowserUnknown Browser = "unknown"
)

// Breakpoint is a responsive width tier.
type Breakpoint string

// Breakpoint tiers, ascending.
const (
	BreakpointXS  Breakpoint = "xs"
	BreakpointSM  Breakpoint = "sm"
	BreakpointMD  Breakpoint = "md"
	BreakpointLG  Breakpoint = "lg"
	BreakpointXL  Breakpoint = "xl"
	Breakpoint2XL Breakpoint = "2xl"
)

// Orientation of the viewport.
type Orientation string

// Orientations.
const (
	OrientationPortrait  Orientation = "portrait"
	OrientationLandscape Orientation = "landscape"
)

// Device class boundaries. They are independent from the breakpoint table.
const (
	TabletMinWidth  = 768
	DesktopMinWidth = 1024
)

// Fallback viewport used when no environment is available.
const (
	FallbackWidth  = 1024
	FallbackHeight = 768
)

// maxVersionLen caps extracted version strings.
const maxVersionLen = 20
