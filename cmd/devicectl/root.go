package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cardkit/pkg/logger"
)

type rootOptions struct {
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{log: logger.Nop()}

	cmd := &cobra.Command{
		Use:           "devicectl",
		Short:         "Inspect device detection",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				opts.log = logger.New(
					logger.WithTextFormatter(),
					logger.WithLevel(slog.LevelDebug),
					logger.WithOutput(cmd.ErrOrStderr()),
				)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log detection diagnostics to stderr")

	cmd.AddCommand(
		newDetectCmd(opts),
		newBreakpointsCmd(),
		newWatchCmd(opts),
	)
	return cmd
}
