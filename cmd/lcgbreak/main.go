// Command lcgbreak recovers linear congruential generator parameters from
// consecutive outputs.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/lcgbreak/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		if !cli.IsReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
