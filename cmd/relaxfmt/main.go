package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"relaxfmt/internal/version"
)

// errSilent marks failures that were already reported to the user.
var errSilent = errors.New("silent failure")

// newRootCmd builds the command tree. Each call returns fresh commands, so
// flag values never leak between executions. finish flushes tracing and
// must be called once Execute returns.
func newRootCmd() (rootCmd *cobra.Command, finish func(failed bool)) {
	var cleanup func(failed bool)
	var stopProfiling func()
	rootCmd = &cobra.Command{
		Use:   "relaxfmt",
		Short: "Elixir formatter with relaxed bracket spacing",
		Long: `relaxfmt formats Elixir source like mix format and then pads brackets,
so foo(1, 2) becomes foo( 1, 2 ) and [1, 2] becomes [ 1, 2 ].`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			stop, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			stopProfiling = stop
			c, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			cleanup = c
			return nil
		},
	}

	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newDocCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	flags := rootCmd.PersistentFlags()
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("quiet", false, "suppress non-essential output")
	flags.Bool("timings", false, "show timing information")
	flags.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	flags.String("diag-format", "pretty", "diagnostics format (pretty|short)")
	flags.String("config", "", "path to .relaxfmt.toml (default: search upwards from the first path)")
	flags.String("trace", "", "trace output file (\"-\" for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	flags.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	flags.Int("trace-ring-size", 4096, "events kept in ring mode")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file on exit")
	flags.String("runtime-trace", "", "write Go runtime trace to file")

	finish = func(failed bool) {
		if cleanup != nil {
			cleanup(failed)
			cleanup = nil
		}
		if stopProfiling != nil {
			stopProfiling()
			stopProfiling = nil
		}
	}
	return rootCmd, finish
}

// main builds the command tree and executes it. A failing command exits
// with status 1; errors not yet reported are printed to stderr first.
func main() {
	rootCmd, finish := newRootCmd()
	err := rootCmd.Execute()
	finish(err != nil)
	if err != nil {
		if !errors.Is(err, errSilent) {
			fmt.Fprintf(os.Stderr, "relaxfmt: %v\n", err)
		}
		os.Exit(1)
	}
}
