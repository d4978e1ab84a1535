package device

import (
	"regexp"
	"strings"
)

// osPattern pairs an OS family with the keywords that identify it and the
// expression used to pull its version out of the user agent.
type osPattern struct {
	os         OS
	keywords   keywordSet
	version    *regexp.Regexp
	underscore bool // version uses "_" as separator (Apple platforms)
}

// Checked in order: Android UAs mention Linux, iOS UAs mention Mac OS X.
var osPatterns = []osPattern{
	{
		os:       OSAndroid,
		keywords: newKeywordSet("android"),
		version:  regexp.MustCompile(`android\s+([\d.]+)`),
	},
	{
		os:         OSIOS,
		keywords:   newKeywordSet("iphone", "ipad", "ipod"),
		version:    regexp.MustCompile(`os\s+([\d_.]+)`),
		underscore: true,
	},
	{
		os:       OSWindows,
		keywords: newKeywordSet("windows"),
		version:  regexp.MustCompile(`windows nt\s+([\d.]+)`),
	},
	{
		os:         OSMac,
		keywords:   newKeywordSet("macintosh", "mac os x"),
		version:    regexp.MustCompile(`mac os x\s+([\d_.]+)`),
		underscore: true,
	},
	{
		os:       OSLinux,
		keywords: newKeywordSet("linux"),
	},
}

// DetectOS returns the operating system family and, when present, its version.
// An unrecognised user agent yields OSUnknown with an empty version.
func DetectOS(userAgent string) (OS, string) {
	ua := strings.ToLower(userAgent)
	for _, p := range osPatterns {
		if !p.keywords.contains(ua) {
			continue
		}
		if p.version == nil {
			return p.os, ""
		}
		version := extractVersion(ua, p.version)
		if p.underscore {
			version = strings.ReplaceAll(version, "_", ".")
		}
		return p.os, strings.Trim(version, ".")
	}
	return OSUnknown, ""
}

// extractVersion returns the first capture group of re in ua, capped in length.
func extractVersion(ua string, re *regexp.Regexp) string {
	matches := re.FindStringSubmatch(ua)
	if len(matches) < 2 {
		return ""
	}
	version := matches[1]
	if len(version) > maxVersionLen {
		version = version[:maxVersionLen]
	}
	return version
}
