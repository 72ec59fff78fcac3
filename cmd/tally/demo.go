package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tally/internal/demo"
	"github.com/vango-dev/tally/internal/errors"
)

func demoCmd() *cobra.Command {
	var (
		clicks  int
		depth   int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Click the innermost scope of a nested chain and print the counts",
		Long: `Build a chain of nested counter scopes, click the innermost "+1" button
and print the count of every level. Each level sees its own clicks plus
those of every level nested inside it.

Examples:
  tally demo
  tally demo --clicks 5 --depth 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if clicks < 0 {
				return errors.New("T201").WithDetailf("--clicks must not be negative, got %d", clicks)
			}
			if depth < 1 {
				return errors.New("T201").WithDetailf("--depth must be at least 1, got %d", depth)
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			result, err := demo.Run(demo.Options{Depth: depth}, clicks, logger)
			if err != nil {
				return errors.FromError(err, "T403")
			}
			printResult(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&clicks, "clicks", "n", 3, "Number of clicks on the innermost level")
	cmd.Flags().IntVarP(&depth, "depth", "d", 3, "Number of nested levels")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log mounts and renders")
	return cmd
}

func printResult(w io.Writer, r *demo.Result) {
	for i, n := range r.Levels {
		fmt.Fprintf(w, "%slevel %d: %d\n", strings.Repeat("  ", i), i+1, n)
	}
	fmt.Fprintf(w, "total: %d (%d renders)\n", r.Total, r.Renders)
}
