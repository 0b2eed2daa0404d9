// Command qxs computes q-character X-series polynomials and the smoothed
// spectral time evolution injected into them.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/qxseries/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "qxs:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
