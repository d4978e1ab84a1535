package devicewatch

import "github.com/dmitrymomot/cardkit/pkg/device"

// State is a snapshot merged with the booleans derived from it.
type State struct {
	device.Info

	IsLandscape       bool `json:"isLandscape"`
	IsPortrait        bool `json:"isPortrait"`
	IsMobileOrTablet  bool `json:"isMobileOrTablet"`
	IsDesktopOrTablet bool `json:"isDesktopOrTablet"`

	IsXS  bool `json:"isXs"`
	IsSM  bool `json:"isSm"`
	IsMD  bool `json:"isMd"`
	IsLG  bool `json:"isLg"`
	IsXL  bool `json:"isXl"`
	Is2XL bool `json:"is2xl"`

	IsApple   bool `json:"isApple"`
	IsAndroid bool `json:"isAndroid"`
	IsWindows bool `json:"isWindows"`
	IsLinux   bool `json:"isLinux"`

	IsChrome  bool `json:"isChrome"`
	IsFirefox bool `json:"isFirefox"`
	IsSafari  bool `json:"isSafari"`
	IsEdge    bool `json:"isEdge"`
	IsOpera   bool `json:"isOpera"`
}

// Derive computes the derived booleans of info. It is pure.
func Derive(info device.Info) State {
	return State{
		Info: info,

		IsLandscape:       info.Orientation == device.OrientationLandscape,
		IsPortrait:        info.Orientation == device.OrientationPortrait,
		IsMobileOrTablet:  info.IsMobile || info.IsTablet,
		IsDesktopOrTablet: info.IsDesktop || info.IsTablet,

		IsXS:  info.Breakpoint == device.BreakpointXS,
		IsSM:  info.Breakpoint == device.BreakpointSM,
		IsMD:  info.Breakpoint == device.BreakpointMD,
		IsLG:  info.Breakpoint == device.BreakpointLG,
		IsXL:  info.Breakpoint == device.BreakpointXL,
		Is2XL: info.Breakpoint == device.Breakpoint2XL,

		IsApple:   info.OS == device.OSIOS || info.OS == device.OSMac,
		IsAndroid: info.OS == device.OSAndroid,
		IsWindows: info.OS == device.OSWindows,
		IsLinux:   info.OS == device.OSLinux,

		IsChrome:  info.Browser == device.BrowserChrome,
		IsFirefox: info.Browser == device.BrowserFirefox,
		IsSafari:  info.Browser == device.BrowserSafari,
		IsEdge:    info.Browser == device.BrowserEdge,
		IsOpera:   info.Browser == device.BrowserOpera,
	}
}
