package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/cardkit/pkg/device"
)

func newBreakpointsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breakpoints [tier]",
		Short: "Print the breakpoint table or one tier's minimum width",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				tier, err := device.ParseBreakpoint(args[0])
				if err != nil {
					return err
				}
				v, _ := device.BreakpointValue(tier)
				_, err = fmt.Fprintln(out, v)
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TIER\tMIN WIDTH")
			for _, t := range device.Breakpoints() {
				fmt.Fprintf(tw, "%s\t%d\n", t.Name, t.MinWidth)
			}
			return tw.Flush()
		},
	}
}
