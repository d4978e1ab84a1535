package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iPhoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_2 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.2 Mobile/15E148 Safari/604.1"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func decodeState(t *testing.T, raw string) map[string]any {
	t.Helper()

	var state map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	return state
}

func TestDetectCommand(t *testing.T) {
	t.Parallel()

	t.Run("flags", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect",
			"--ua", iPhoneUA,
			"--width", "390", "--height", "844",
			"--dpr", "3", "--touch-events", "--touch-points", "5",
		)
		require.NoError(t, err)

		state := decodeState(t, out)
		assert.Equal(t, "mobile", state["deviceType"])
		assert.Equal(t, "ios", state["os"])
		assert.Equal(t, "17.2", state["osVersion"])
		assert.Equal(t, "safari", state["browser"])
		assert.Equal(t, "xs", state["breakpoint"])
		assert.Equal(t, true, state["isPortrait"])
		assert.Equal(t, true, state["isXs"])
		assert.Equal(t, true, state["isApple"])
		assert.Equal(t, true, state["isRetina"])
		assert.Equal(t, true, state["isTouch"])
		assert.NotContains(t, state, "batteryLevel")
		assert.NotContains(t, state, "connectionType")
	})

	t.Run("no signals yields fallback", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect")
		require.NoError(t, err)

		state := decodeState(t, out)
		assert.Equal(t, "desktop", state["deviceType"])
		assert.Equal(t, "unknown", state["os"])
		assert.Equal(t, "unknown", state["browser"])
		assert.InDelta(t, 1024, state["width"], 0)
		assert.InDelta(t, 768, state["height"], 0)
		assert.Equal(t, "lg", state["breakpoint"])
		assert.Equal(t, true, state["isLandscape"])
	})

	t.Run("capability flags without viewport", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect", "--dpr", "2", "--touch-points", "5", "--battery-level", "0.25")
		require.NoError(t, err)

		state := decodeState(t, out)
		assert.Equal(t, true, state["isRetina"])
		assert.Equal(t, true, state["isTouch"])
		assert.InDelta(t, 0.25, state["batteryLevel"], 1e-9)
		assert.InDelta(t, 0, state["width"], 0)
		assert.Equal(t, "mobile", state["deviceType"])
		assert.Equal(t, "unknown", state["os"])
	})

	t.Run("capability flags", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect",
			"--ua", iPhoneUA, "--width", "390", "--height", "844",
			"--effective-type", "4g", "--battery-level", "0.5", "--charging",
		)
		require.NoError(t, err)

		state := decodeState(t, out)
		assert.Equal(t, "4g", state["effectiveConnectionType"])
		assert.NotContains(t, state, "connectionType")
		assert.InDelta(t, 0.5, state["batteryLevel"], 1e-9)
		assert.Equal(t, true, state["isCharging"])
	})

	t.Run("file with label", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect", "--file", "testdata/pixel.yaml", "--label")
		require.NoError(t, err)
		assert.Equal(t, "Chrome 120.0 on Android 13 (mobile, xs)\n", out)
	})

	t.Run("file with capabilities", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "detect", "-f", "testdata/pixel.yaml")
		require.NoError(t, err)

		state := decodeState(t, out)
		assert.Equal(t, "cellular", state["connectionType"])
		assert.Equal(t, "4g", state["effectiveConnectionType"])
		assert.InDelta(t, 0.8, state["batteryLevel"], 1e-9)
		assert.Equal(t, false, state["isCharging"])
		assert.Equal(t, true, state["isAndroid"])
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "detect", "--file", "testdata/nope.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read signals")
	})

	t.Run("positional args rejected", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "detect", "extra")
		require.Error(t, err)
	})
}

func TestBreakpointsCommand(t *testing.T) {
	t.Parallel()

	t.Run("table", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "breakpoints")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 7)
		assert.Equal(t, []string{"TIER", "MIN", "WIDTH"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"xs", "0"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"2xl", "1536"}, strings.Fields(lines[6]))
	})

	t.Run("single tier", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "breakpoints", "md")
		require.NoError(t, err)
		assert.Equal(t, "768\n", out)
	})

	t.Run("unknown tier", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "breakpoints", "huge")
		require.Error(t, err)
	})
}

func TestWatchCommand(t *testing.T) {
	t.Parallel()

	t.Run("replays script", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "watch",
			"--script", "testdata/rotate.yaml",
			"--debounce", "10ms", "--settle-delay", "10ms", "--linger", "150ms",
		)
		require.NoError(t, err)

		var states []map[string]any
		sc := bufio.NewScanner(strings.NewReader(out))
		for sc.Scan() {
			states = append(states, decodeState(t, sc.Text()))
		}
		require.GreaterOrEqual(t, len(states), 2)

		first, last := states[0], states[len(states)-1]
		assert.Equal(t, "ios", first["os"])
		assert.Equal(t, "mobile", first["deviceType"])
		assert.Equal(t, true, first["isPortrait"])

		assert.InDelta(t, 1280, last["width"], 0)
		assert.Equal(t, "desktop", last["deviceType"])
		assert.Equal(t, "xl", last["breakpoint"])
		assert.Equal(t, true, last["isLandscape"])
	})

	t.Run("labels", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "watch",
			"-s", "testdata/rotate.yaml", "--label",
			"--debounce", "10ms", "--settle-delay", "10ms", "--linger", "150ms",
		)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "Safari 17.2 on iOS 17.2 (mobile, xs)\n"), out)
		assert.True(t, strings.HasSuffix(out, "Safari 17.2 on iOS 17.2 (desktop, xl)\n"), out)
	})

	t.Run("unknown event type", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "watch", "--script", "testdata/bad_event.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown event type")
	})

	t.Run("script required", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "watch")
		require.Error(t, err)
	})
}
