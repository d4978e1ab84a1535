package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cardkit/pkg/config"
	"github.com/dmitrymomot/cardkit/pkg/device"
	"github.com/dmitrymomot/cardkit/pkg/devicewatch"
)

type watchOptions struct {
	script      string
	label       bool
	debounce    time.Duration
	settleDelay time.Duration
	linger      time.Duration
}

func newWatchCmd(root *rootOptions) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Replay a script of environment changes through a watcher",
		Long: `Replay a YAML script of timed resize and orientation events through a
device watcher and print every snapshot it publishes, one JSON object per line.

Timings default to DEVICE_DEBOUNCE and DEVICE_SETTLE_DELAY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg devicewatch.Config
			if err := config.Load(&cfg); err != nil {
				return err
			}
			if cmd.Flags().Changed("debounce") {
				cfg.Debounce = opts.debounce
			}
			if cmd.Flags().Changed("settle-delay") {
				cfg.SettleDelay = opts.settleDelay
			}

			s, err := loadScript(opts.script)
			if err != nil {
				return err
			}
			return runWatch(cmd.Context(), cmd.OutOrStdout(), s, cfg, opts, root)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.script, "script", "s", "", "YAML script to replay")
	f.BoolVar(&opts.label, "label", false, "print one-line labels instead of JSON")
	f.DurationVar(&opts.debounce, "debounce", devicewatch.DefaultDebounce, "resize debounce window")
	f.DurationVar(&opts.settleDelay, "settle-delay", devicewatch.DefaultSettleDelay, "orientation settle delay")
	f.DurationVar(&opts.linger, "linger", 0, "wait after the last step before closing (default: twice the longest delay)")
	_ = cmd.MarkFlagRequired("script")

	return cmd
}

func runWatch(ctx context.Context, out io.Writer, s script, cfg devicewatch.Config, opts *watchOptions, root *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env := newScriptEnv(s.Initial)
	w := devicewatch.NewFromConfig(env, cfg, devicewatch.WithLogger(root.log))
	sub := w.Subscribe(ctx)

	printed := make(chan error, 1)
	go func() {
		var err error
		for msg := range sub.Receive(ctx) {
			if err == nil {
				err = printSnapshot(out, msg.Data, opts.label)
			}
		}
		printed <- err
	}()

	if err := w.Start(ctx); err != nil {
		return err
	}

	replayErr := s.replay(ctx, env)
	if replayErr == nil {
		linger := opts.linger
		if linger <= 0 {
			linger = 2 * max(cfg.Debounce, cfg.SettleDelay)
		}
		select {
		case <-time.After(linger):
		case <-ctx.Done():
		}
	}

	if err := w.Close(); err != nil {
		return err
	}
	if err := <-printed; err != nil {
		return err
	}
	return replayErr
}

func printSnapshot(w io.Writer, info device.Info, label bool) error {
	if label {
		_, err := fmt.Fprintln(w, device.Label(info))
		return err
	}
	return json.NewEncoder(w).Encode(devicewatch.Derive(info))
}
