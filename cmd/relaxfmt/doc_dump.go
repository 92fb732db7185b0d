package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"relaxfmt/internal/diagfmt"
	"relaxfmt/internal/driver"
)

func newDocCmd() *cobra.Command {
	docCmd := &cobra.Command{
		Use:   "doc [flags] file.ex|-",
		Short: "Print the layout document of a file",
		Long: `Doc prints the document tree the renderer lays out. By default the tree
is shown after bracket padding; --raw shows it before.`,
		Args: cobra.ExactArgs(1),
		RunE: runDoc,
	}
	docCmd.Flags().String("format", "tree", "output format (tree|json|yaml)")
	docCmd.Flags().Bool("raw", false, "show the document before bracket padding")
	addFormatFlags(docCmd)
	return docCmd
}

func runDoc(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return err
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	s, err := loadSettings(cmd, g, path)
	if err != nil {
		return err
	}

	var src []byte
	if path == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
		s.options.File = "stdin"
	} else {
		src, err = os.ReadFile(path)
		s.options.File = path
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.options.File, err)
	}
	s.options.NoRelax = raw

	d, err := driver.Document(cmd.Context(), src, s.options)
	if err != nil {
		var serr *driver.SyntaxError
		if errors.As(err, &serr) {
			printDiagnostics(cmd.ErrOrStderr(), serr.Bag, serr.FileSet, g)
			return fmt.Errorf("doc: %w", errSilent)
		}
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "tree":
		return diagfmt.FormatDocPretty(out, d)
	case "json":
		return diagfmt.FormatDocJSON(out, d)
	case "yaml":
		return diagfmt.FormatDocYAML(out, d)
	default:
		return fmt.Errorf("unsupported format %q (expected tree|json|yaml)", format)
	}
}
