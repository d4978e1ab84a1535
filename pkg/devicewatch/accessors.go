package devicewatch

import "github.com/dmitrymomot/cardkit/pkg/device"

// Platform groups the operating system facts of a snapshot.
type Platform struct {
	OS        device.OS `json:"os"`
	Version   string    `json:"version,omitempty"`
	IsApple   bool      `json:"isApple"`
	IsAndroid bool      `json:"isAndroid"`
	IsWindows bool      `json:"isWindows"`
	IsLinux   bool      `json:"isLinux"`
}

// BrowserInfo groups the browser facts of a snapshot.
type BrowserInfo struct {
	Name      device.Browser `json:"name"`
	Version   string         `json:"version,omitempty"`
	IsChrome  bool           `json:"isChrome"`
	IsFirefox bool           `json:"isFirefox"`
	IsSafari  bool           `json:"isSafari"`
	IsEdge    bool           `json:"isEdge"`
	IsOpera   bool           `json:"isOpera"`
}

// IsMobile reports whether the current snapshot is a mobile device.
func (w *Watcher) IsMobile() bool { return w.Snapshot().IsMobile }

// IsTouch reports whether the current environment supports touch input.
func (w *Watcher) IsTouch() bool { return w.Snapshot().IsTouch }

// Breakpoint returns the current breakpoint tier.
func (w *Watcher) Breakpoint() device.Breakpoint { return w.Snapshot().Breakpoint }

// Orientation returns the current viewport orientation.
func (w *Watcher) Orientation() device.Orientation { return w.Snapshot().Orientation }

// Platform returns the operating system facts of the current snapshot.
func (w *Watcher) Platform() Platform {
	s := w.State()
	return Platform{
		OS:        s.OS,
		Version:   s.OSVersion,
		IsApple:   s.IsApple,
		IsAndroid: s.IsAndroid,
		IsWindows: s.IsWindows,
		IsLinux:   s.IsLinux,
	}
}

// Browser returns the browser facts of the current snapshot.
func (w *Watcher) Browser() BrowserInfo {
	s := w.State()
	return BrowserInfo{
		Name:      s.Browser,
		Version:   s.BrowserVersion,
		IsChrome:  s.IsChrome,
		IsFirefox: s.IsFirefox,
		IsSafari:  s.IsSafari,
		IsEdge:    s.IsEdge,
		IsOpera:   s.IsOpera,
	}
}
