package device_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardkit/pkg/device"
)

type uaFixture struct {
	Name           string         `yaml:"name"`
	UA             string         `yaml:"ua"`
	OS             device.OS      `yaml:"os"`
	OSVersion      string         `yaml:"osVersion"`
	Browser        device.Browser `yaml:"browser"`
	BrowserVersion string         `yaml:"browserVersion"`
}

func loadUAFixtures(t *testing.T) []uaFixture {
	t.Helper()
	raw, err := os.ReadFile("testdata/user_agents.yaml")
	require.NoError(t, err)

	var fixtures []uaFixture
	require.NoError(t, yaml.Unmarshal(raw, &fixtures))
	require.NotEmpty(t, fixtures)
	return fixtures
}

func TestDetectOS_Fixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range loadUAFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			gotOS, version := device.DetectOS(tc.UA)
			assert.Equal(t, tc.OS, gotOS)
			assert.Equal(t, tc.OSVersion, version)
		})
	}
}

func TestDetectBrowser_Fixtures(t *testing.T) {
	t.Parallel()

	for _, tc := range loadUAFixtures(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			browser, version := device.DetectBrowser(tc.UA)
			assert.Equal(t, tc.Browser, browser)
			assert.Equal(t, tc.BrowserVersion, version)
		})
	}
}

func TestDetectOS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		os      device.OS
		version string
	}{
		{"android version", "Mozilla/5.0 (Linux; Android 13; SM-S918B)", device.OSAndroid, "13"},
		{"ios underscores become dots", "Mozilla/5.0 (iPhone; CPU iPhone OS 16_2 like Mac OS X)", device.OSIOS, "16.2"},
		{"ipod", "Mozilla/5.0 (iPod touch; CPU iPhone OS 12_5_7 like Mac OS X)", device.OSIOS, "12.5.7"},
		{"android wins over linux", "Mozilla/5.0 (Linux; U; Android 4.4.2)", device.OSAndroid, "4.4.2"},
		{"ios wins over mac", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", device.OSIOS, "16.0"},
		{"windows without version", "Mozilla/5.0 (Windows; U)", device.OSWindows, ""},
		{"mac without version", "Mozilla/5.0 (Macintosh; PPC)", device.OSMac, ""},
		{"case insensitive", "MOZILLA/5.0 (ANDROID 12)", device.OSAndroid, "12"},
		{"unknown", "Googlebot/2.1", device.OSUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gotOS, version := device.DetectOS(tt.ua)
			assert.Equal(t, tt.os, gotOS)
			assert.Equal(t, tt.version, version)
		})
	}
}

func TestDetectBrowser_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ua      string
		browser device.Browser
	}{
		{"edge beats chrome", "Chrome/120.0 Safari/537.36 Edg/120.0", device.BrowserEdge},
		{"chrome beats safari", "Chrome/120.0 Safari/537.36", device.BrowserChrome},
		{"crios beats safari", "CriOS/120.0 Mobile Safari/604.1", device.BrowserChrome},
		{"firefox beats safari", "FxiOS/121.0 Safari/605.1.15", device.BrowserFirefox},
		{"safari alone", "Version/17.0 Safari/605.1.15", device.BrowserSafari},
		{"opera modern token", "OPR/106.0 Presto", device.BrowserOpera},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			browser, _ := device.DetectBrowser(tt.ua)
			assert.Equal(t, tt.browser, browser)
		})
	}

	t.Run("missing version token", func(t *testing.T) {
		t.Parallel()
		browser, version := device.DetectBrowser("AppleWebKit Safari/605.1.15")
		assert.Equal(t, device.BrowserSafari, browser)
		assert.Empty(t, version)
	})
}
