package device

import (
	"regexp"
	"strings"
)

// BrowserPattern defines how a browser family is recognised in a lower-cased
// user agent. A pattern matches when any keyword is present and no exclude is.
type BrowserPattern struct {
	Name      Browser
	Keywords  keywordSet
	Excludes  keywordSet
	Regex     *regexp.Regexp
	OrderHint int
}

func (p BrowserPattern) match(ua string) bool {
	if !p.Keywords.contains(ua) {
		return false
	}
	return p.Excludes == nil || !p.Excludes.contains(ua)
}

var edgeMarkers = []string{"edg/", "edge/", "edga/", "edgios/"}

// Chromium-based Edge also carries "chrome" and "safari", and every Chrome
// UA carries "safari", so order is significant. Sorted by OrderHint in init.
var browserPatterns = []BrowserPattern{
	{
		Name:      BrowserEdge,
		Keywords:  newKeywordSet(edgeMarkers...),
		Regex:     regexp.MustCompile(`(?:edge|edg|edga|edgios)/([\d.]+)`),
		OrderHint: 10,
	},
	{
		Name:      BrowserChrome,
		Keywords:  newKeywordSet("chrome", "crios"),
		Excludes:  newKeywordSet(edgeMarkers...),
		Regex:     regexp.MustCompile(`(?:chrome|crios)/([\d.]+)`),
		OrderHint: 20,
	},
	{
		Name:      BrowserFirefox,
		Keywords:  newKeywordSet("firefox", "fxios"),
		Regex:     regexp.MustCompile(`(?:firefox|fxios)/([\d.]+)`),
		OrderHint: 30,
	},
	{
		Name:      BrowserSafari,
		Keywords:  newKeywordSet("safari"),
		Excludes:  newKeywordSet("chrome", "crios"),
		Regex:     regexp.MustCompile(`version/([\d.]+)`),
		OrderHint: 40,
	},
	{
		Name:      BrowserOpera,
		Keywords:  newKeywordSet("opr/", "opera"),
		Regex:     regexp.MustCompile(`(?:opr|opera)[/\s]([\d.]+)`),
		OrderHint: 50,
	},
}

// DetectBrowser returns the browser family and, when present, its version.
// Precedence: Edge, Chrome, Firefox, Safari, Opera.
func DetectBrowser(userAgent string) (Browser, string) {
	ua := strings.ToLower(userAgent)
	for _, p := range browserPatterns {
		if p.match(ua) {
			return p.Name, extractVersion(ua, p.Regex)
		}
	}
	return BrowserUnknown, ""
}
