package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/devicewatch"
)

var signalFlags = []string{
	"ua", "width", "height", "dpr", "touch-events", "touch-points", "standalone",
	"connection-type", "effective-type", "battery-level", "charging",
}

type detectOptions struct {
	file          string
	label         bool
	signals       device.Signals
	connType      string
	effectiveType string
	batteryLevel  float64
	charging      bool
}

func newDetectCmd(root *rootOptions) *cobra.Command {
	opts := &detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Classify a set of ambient signals",
		Long: `Classify a set of ambient signals and print the derived device state.

Signals come from flags or from a YAML/JSON document (--file, "-" for stdin).
When no signal flag is set the fallback snapshot is printed. Any signal flag,
including --dpr or the capability flags alone, switches to detection with
unset flags at their zero values.

Examples:
  devicectl detect --ua "$UA" --width 390 --height 844 --dpr 3 --touch-points 5
  devicectl detect --file signals.yaml --label`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := opts.environment(cmd)
			if err != nil {
				return err
			}
			info, err := device.Detect(cmd.Context(), env)
			if err != nil {
				return err
			}
			root.log.DebugContext(cmd.Context(), "detected", "device", info)
			return printState(cmd.OutOrStdout(), info, opts.label)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.file, "file", "f", "", "read signals from a YAML or JSON file")
	f.BoolVar(&opts.label, "label", false, "print a one-line label instead of JSON")
	f.StringVar(&opts.signals.UserAgent, "ua", "", "user agent string")
	f.IntVar(&opts.signals.Width, "width", 0, "viewport width in CSS pixels")
	f.IntVar(&opts.signals.Height, "height", 0, "viewport height in CSS pixels")
	f.Float64Var(&opts.signals.PixelRatio, "dpr", 1, "device pixel ratio")
	f.BoolVar(&opts.signals.Touch.Events, "touch-events", false, "touch-start events are supported")
	f.IntVar(&opts.signals.Touch.MaxTouchPoints, "touch-points", 0, "maximum touch points")
	f.BoolVar(&opts.signals.Standalone.DisplayMode, "standalone", false, "standalone display mode matches")
	f.StringVar(&opts.connType, "connection-type", "", "network connection type")
	f.StringVar(&opts.effectiveType, "effective-type", "", "effective connection type")
	f.Float64Var(&opts.batteryLevel, "battery-level", -1, "battery level in [0,1], negative for no battery capability")
	f.BoolVar(&opts.charging, "charging", false, "battery is charging")

	return cmd
}

// environment builds the environment from the file or the flags. It returns
// nil when no signal flag was set so detection yields the fallback snapshot.
func (o *detectOptions) environment(cmd *cobra.Command) (device.Environment, error) {
	if o.file != "" {
		s, err := readSignals(cmd.InOrStdin(), o.file)
		if err != nil {
			return nil, err
		}
		return s.Env(), nil
	}

	s := o.signals
	if o.connType != "" || o.effectiveType != "" {
		s.Connection = &device.Connection{Type: o.connType, EffectiveType: o.effectiveType}
	}
	if o.batteryLevel >= 0 {
		s.Battery = &device.Battery{Level: o.batteryLevel, Charging: o.charging}
	}
	for _, name := range signalFlags {
		if cmd.Flags().Changed(name) {
			return s.Env(), nil
		}
	}
	return nil, nil
}

func readSignals(stdin io.Reader, path string) (device.Signals, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return device.Signals{}, fmt.Errorf("read signals: %w", err)
	}

	var s device.Signals
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return device.Signals{}, fmt.Errorf("decode signals: %w", err)
	}
	return s, nil
}

func printState(w io.Writer, info device.Info, label bool) error {
	if label {
		_, err := fmt.Fprintln(w, device.Label(info))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(devicewatch.Derive(info))
}
