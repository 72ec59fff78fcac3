// Command tally serves and exercises nested counter scopes.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tally/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Nested counter scopes over a live component tree",
		Long: `tally renders a tree of nested counter scopes. An add in any scope
updates that scope and every enclosing scope of the same counter.

  tally serve    start the live demo server
  tally demo     run a nested chain in-process and print the counts
  tally version  print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor || os.Getenv("NO_COLOR") != "" {
				errors.DisableColors()
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored error output")

	cmd.AddCommand(
		serveCmd(),
		demoCmd(),
		versionCmd(),
	)
	return cmd
}
