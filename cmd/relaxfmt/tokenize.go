package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"relaxfmt/internal/diagfmt"
	"relaxfmt/internal/driver"
)

func newTokensCmd() *cobra.Command {
	tokensCmd := &cobra.Command{
		Use:   "tokens [flags] file.ex|-",
		Short: "Tokenize an Elixir source file",
		Long:  `Tokens breaks an Elixir source file into the tokens the formatter sees`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return tokensCmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		src, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("read stdin: %w", readErr)
		}
		result = driver.TokenizeString("stdin", src, g.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(filePath, g.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Диагностика лексера идёт в stderr, токены всё равно печатаются
	printDiagnostics(cmd.ErrOrStderr(), result.Bag, result.FileSet, g)

	out := cmd.OutOrStdout()
	if format == "json" {
		return diagfmt.FormatTokensJSON(out, result.Tokens)
	}
	return diagfmt.FormatTokensPretty(out, result.Tokens, result.FileSet)
}
