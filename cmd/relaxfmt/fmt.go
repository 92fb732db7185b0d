package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/diagfmt"
	"relaxfmt/internal/driver"
	"relaxfmt/internal/observ"
	"relaxfmt/internal/source"
	"relaxfmt/internal/ui"
)

func newFmtCmd() *cobra.Command {
	fmtCmd := &cobra.Command{
		Use:   "fmt [flags] [path|-]...",
		Short: "Format Elixir source files",
		Long: `Format .ex and .exs files in place. Directories are walked recursively.
Without paths, the inputs patterns of .relaxfmt.toml are used. A single "-"
reads standard input and writes the result to standard output.`,
		RunE: runFmt,
	}
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("diff", false, "print a unified diff instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "number of files formatted in parallel (default: GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	ui := uiModeAuto
	fmtCmd.Flags().Var(&ui, "ui", "progress display")
	fmtCmd.Flags().Bool("no-relax", false, "skip bracket padding and print the plain layout")
	fmtCmd.Flags().Bool("verify", false, "reparse the output and compare it with the input")
	fmtCmd.Flags().Bool("highlight", false, "color literals in printed code (with --stdout or -)")
	addFormatFlags(fmtCmd)
	return fmtCmd
}

type fmtFlags struct {
	check, stdout, diff bool
	format              string
	jobs                int
	noCache             bool
	ui                  uiMode
	noRelax, verify     bool
	highlight           bool
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var f fmtFlags
	var err error
	flags := cmd.Flags()
	if f.check, err = flags.GetBool("check"); err != nil {
		return f, err
	}
	if f.stdout, err = flags.GetBool("stdout"); err != nil {
		return f, err
	}
	if f.diff, err = flags.GetBool("diff"); err != nil {
		return f, err
	}
	if f.format, err = flags.GetString("format"); err != nil {
		return f, err
	}
	if f.jobs, err = flags.GetInt("jobs"); err != nil {
		return f, err
	}
	if f.noCache, err = flags.GetBool("no-cache"); err != nil {
		return f, err
	}
	if v, ok := flags.Lookup("ui").Value.(*uiMode); ok {
		f.ui = *v
	}
	if f.noRelax, err = flags.GetBool("no-relax"); err != nil {
		return f, err
	}
	if f.verify, err = flags.GetBool("verify"); err != nil {
		return f, err
	}
	if f.highlight, err = flags.GetBool("highlight"); err != nil {
		return f, err
	}

	switch {
	case f.format != "text" && f.format != "json":
		return f, fmt.Errorf("fmt: unsupported output format %q", f.format)
	case f.stdout && f.check:
		return f, errors.New("fmt: --stdout cannot be used with --check")
	case f.diff && (f.stdout || f.check):
		return f, errors.New("fmt: --diff cannot be used with --stdout or --check")
	case f.format == "json" && (f.stdout || f.diff):
		return f, errors.New("fmt: --stdout and --diff are only supported with text output")
	}
	return f, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	f, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}

	start := "."
	if len(args) > 0 {
		start = args[0]
	}
	s, err := loadSettings(cmd, g, start)
	if err != nil {
		return err
	}
	s.options.NoRelax = f.noRelax

	if len(args) == 1 && args[0] == "-" {
		s.options.Highlight = f.highlight
		return runFmtStdin(cmd, g, f, s)
	}
	if f.highlight && !f.stdout {
		return errors.New("fmt: --highlight needs --stdout or - as input")
	}
	s.options.Highlight = f.highlight

	paths, err := s.inputs(args)
	if err != nil {
		return err
	}

	opts := driver.FormatOptions{
		Options: s.options,
		Check:   f.check,
		Stdout:  f.stdout || f.diff,
		Verify:  f.verify,
		Timings: g.timings,
		Jobs:    f.jobs,
	}
	if !f.noCache {
		cache, cacheErr := driver.OpenResultCache("relaxfmt")
		if cacheErr != nil && !g.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "fmt: cache disabled: %v\n", cacheErr)
		}
		opts.Cache = cache
	}

	out := cmd.OutOrStdout()
	var results []driver.FormatResult
	if f.format == "text" && !opts.Stdout && f.ui.useTUI(out) {
		files, collectErr := driver.CollectSourceFiles(cmd.Context(), paths)
		if collectErr != nil {
			return collectErr
		}
		results, err = ui.RunFormat(cmd.Context(), out, "relaxfmt fmt", files, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	if f.format == "json" {
		hasErrors, hasChanges, err = renderFmtJSON(out, results, f.check)
		if err != nil {
			return err
		}
	} else {
		hasErrors, hasChanges = renderFmtText(cmd, results, f, g)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files: %w", errSilent)
	}
	if (f.check || f.diff) && hasChanges {
		return fmt.Errorf("fmt: formatting changes required: %w", errSilent)
	}
	return nil
}

func runFmtStdin(cmd *cobra.Command, g globalFlags, f fmtFlags, s *settings) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("fmt: read stdin: %w", err)
	}
	opts := s.options
	opts.File = "stdin"
	bag := diag.NewBag(g.maxDiagnostics)
	opts.Reporter = diag.BagReporter{Bag: bag}
	var timer *observ.Timer
	if g.timings {
		timer = observ.NewTimer()
		opts.Timer = timer
	}

	formatted, err := driver.FormatString(cmd.Context(), src, opts)
	if err != nil {
		var serr *driver.SyntaxError
		if errors.As(err, &serr) {
			printDiagnostics(cmd.ErrOrStderr(), serr.Bag, serr.FileSet, g)
			return fmt.Errorf("fmt: %w", errSilent)
		}
		return err
	}
	if len(formatted) > 0 {
		formatted = append(formatted, '\n')
	}
	if !g.quiet && bag.Len() > 0 {
		fs := source.NewFileSet()
		fs.AddVirtual(opts.File, src)
		printDiagnostics(cmd.ErrOrStderr(), bag, fs, g)
	}
	if timer != nil {
		printTimings(cmd.ErrOrStderr(), opts.File, timer.Report())
	}

	out := cmd.OutOrStdout()
	changed := !bytes.Equal(src, formatted)
	switch {
	case f.check:
		if changed {
			return fmt.Errorf("fmt: stdin is not formatted: %w", errSilent)
		}
		return nil
	case f.diff:
		if changed {
			_, _ = io.WriteString(out, driver.UnifiedDiff("stdin", src, formatted))
			return fmt.Errorf("fmt: formatting changes required: %w", errSilent)
		}
		return nil
	default:
		_, err = out.Write(formatted)
		return err
	}
}

func renderFmtText(cmd *cobra.Command, results []driver.FormatResult, f fmtFlags, g globalFlags) (hasErrors, hasChanges bool) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			var serr *driver.SyntaxError
			if errors.As(res.Err, &serr) {
				printDiagnostics(errOut, serr.Bag, serr.FileSet, g)
			} else {
				fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
			}
			continue
		}
		if !g.quiet {
			printDiagnostics(errOut, withoutTimings(res.Bag), res.FileSet, g)
		}
		if g.timings && res.Timing != nil {
			printTimings(errOut, res.Path, *res.Timing)
		}
		if res.Changed {
			hasChanges = true
		}

		switch {
		case f.stdout:
			_, _ = out.Write(res.Formatted)
		case f.diff:
			if res.Changed {
				_, _ = io.WriteString(out, driver.UnifiedDiff(res.Path, res.Original, res.Formatted))
			}
		case f.check:
			if res.Changed && !g.quiet {
				fmt.Fprintln(out, res.Path)
			}
		default:
			if res.Changed && !g.quiet {
				fmt.Fprintf(out, "reformatted %s\n", res.Path)
			}
		}
	}
	return hasErrors, hasChanges
}

func withoutTimings(bag *diag.Bag) *diag.Bag {
	if bag == nil {
		return nil
	}
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Code != diag.ObsTimings {
			out.Add(d)
		}
	}
	return out
}

type fmtJSONResult struct {
	Path        string                     `json:"path"`
	Changed     bool                       `json:"changed"`
	Cached      bool                       `json:"cached,omitempty"`
	CheckRun    bool                       `json:"check"`
	Error       string                     `json:"error,omitempty"`
	Diagnostics *diagfmt.DiagnosticsOutput `json:"diagnostics,omitempty"`
	Timings     *observ.Report             `json:"timings,omitempty"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) (hasErrors, hasChanges bool, err error) {
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true}
	payload := make([]fmtJSONResult, 0, len(results))
	for _, res := range results {
		jr := fmtJSONResult{
			Path:     res.Path,
			Changed:  res.Changed,
			Cached:   res.Cached,
			CheckRun: check,
			Timings:  res.Timing,
		}
		bag, fs := res.Bag, res.FileSet
		if res.Err != nil {
			hasErrors = true
			jr.Error = res.Err.Error()
			var serr *driver.SyntaxError
			if errors.As(res.Err, &serr) {
				bag, fs = serr.Bag, serr.FileSet
			}
		}
		if bag != nil && bag.Len() > 0 {
			diags := diagfmt.BuildDiagnosticsOutput(bag, fs, jsonOpts)
			jr.Diagnostics = &diags
		}
		hasChanges = hasChanges || res.Changed
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return hasErrors, hasChanges, encoder.Encode(payload)
}
