// Command devicectl classifies device signals from the command line and
// replays environment changes through a device watcher.
//
//	devicectl detect --ua "Mozilla/5.0 (iPhone; ...)" --width 390 --height 844 --dpr 3
//	devicectl detect --file signals.yaml --label
//	devicectl breakpoints
//	devicectl watch --script rotate.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
