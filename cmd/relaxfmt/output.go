package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/diagfmt"
	"relaxfmt/internal/source"
)

type colorMode string

const (
	colorAuto colorMode = "auto"
	colorOn   colorMode = "on"
	colorOff  colorMode = "off"
)

func readColorMode(cmd *cobra.Command) (colorMode, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", err
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return colorAuto, nil
	case "on", "always":
		return colorOn, nil
	case "off", "never":
		return colorOff, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}

// useColor resolves the color mode for output written to w.
func useColor(mode colorMode, w io.Writer) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		return isTerminal(w) && os.Getenv("NO_COLOR") == ""
	}
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type globalFlags struct {
	color          colorMode
	quiet          bool
	timings        bool
	maxDiagnostics int
	configPath     string
	shortDiags     bool
}

func readGlobalFlags(cmd *cobra.Command) (globalFlags, error) {
	var g globalFlags
	var err error
	flags := cmd.Root().PersistentFlags()
	if g.color, err = readColorMode(cmd); err != nil {
		return g, err
	}
	if g.quiet, err = flags.GetBool("quiet"); err != nil {
		return g, err
	}
	if g.timings, err = flags.GetBool("timings"); err != nil {
		return g, err
	}
	if g.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return g, err
	}
	if g.configPath, err = flags.GetString("config"); err != nil {
		return g, err
	}
	diagFormat, err := flags.GetString("diag-format")
	if err != nil {
		return g, err
	}
	switch diagFormat {
	case "pretty":
	case "short":
		g.shortDiags = true
	default:
		return g, fmt.Errorf("invalid --diag-format value %q (expected pretty|short)", diagFormat)
	}
	return g, nil
}

// printDiagnostics renders bag to w, one line per entry with --diag-format=short
// and with two lines of source context otherwise.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, g globalFlags) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	if g.shortDiags {
		_ = diagfmt.Short(w, bag, fs, true)
		return
	}
	diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
		Color:     useColor(g.color, w),
		Context:   2,
		PathMode:  diagfmt.PathModeAuto,
		ShowNotes: true,
	})
}
