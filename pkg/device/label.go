package device

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names whose casing a title-caser gets wrong.
var displayNames = map[string]string{
	string(OSIOS): "iOS",
	string(OSMac): "macOS",
}

// Label returns a short human-readable identifier of the snapshot, e.g.
// "Chrome 120.0 on Android 13 (mobile, sm)". Unknown values read as "Unknown".
func Label(info Info) string {
	var b strings.Builder
	b.WriteString(displayName(string(info.Browser)))
	if v := shortVersion(info.BrowserVersion); v != "" {
		b.WriteByte(' ')
		b.WriteString(v)
	}
	b.WriteString(" on ")
	b.WriteString(displayName(string(info.OS)))
	if info.OSVersion != "" {
		b.WriteByte(' ')
		b.WriteString(info.OSVersion)
	}
	b.WriteString(" (")
	b.WriteString(string(info.DeviceType))
	b.WriteString(", ")
	b.WriteString(string(info.Breakpoint))
	b.WriteByte(')')
	return b.String()
}

func displayName(name string) string {
	if n, ok := displayNames[name]; ok {
		return n
	}
	return cases.Title(language.English).String(name)
}

// shortVersion keeps major.minor.
func shortVersion(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return strings.Join(parts, ".")
}
