// Command rovers replays robot movement scripts read from stdin.
package main

import (
	"os"

	"github.com/roach88/rovers/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		cli.Report(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
