package cli

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/rovers/internal/engine"
)

// NewRootCommand creates the rovers command.
//
// The command takes no flags or arguments: it reads the whole of stdin,
// drives every robot and writes one result line per robot to stdout.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rovers",
		Short: "Drive robots across a scented grid",
		Long: `Replay robot movement scripts across a bounded grid.

Input (stdin):
  5 3          upper-right corner of the grid
  1 1 E        robot start: x y bearing (N, E, S, W)
  RFRFRFRF     script: F forward, L turn left, R turn right
  ...          further position/script pairs

Output (stdout), one line per robot:
  1 1 E
  3 3 N LOST

A robot that falls off the grid leaves a scent on its last cell. Later
robots ignore any forward move that would drop them off from a scented cell.

Exit codes:
  0 - All robots driven
  1 - Input rejected (empty input, malformed line, unknown bearing or instruction)
  2 - Input or output could not be read or written`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRovers(cmd)
		},
	}

	return cmd
}

func runRovers(cmd *cobra.Command) error {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	lines, readErr := ScanLines(cmd.InOrStdin())
	driver := engine.NewDriver(engine.WithLogger(logger))

	out := bufio.NewWriter(cmd.OutOrStdout())
	for res, err := range driver.Results(lines) {
		if err != nil {
			if flushErr := out.Flush(); flushErr != nil {
				return WrapExitError(ExitCommandError, "failed to write output", flushErr)
			}
			if rerr := readErr(); rerr != nil {
				return WrapExitError(ExitCommandError, "failed to read input", rerr)
			}
			return WrapExitError(ExitFailure, "input rejected", err)
		}
		if _, err := fmt.Fprintln(out, res.String()); err != nil {
			return WrapExitError(ExitCommandError, "failed to write output", err)
		}
	}

	if err := out.Flush(); err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if err := readErr(); err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	return nil
}
