package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"relaxfmt/internal/driver"
	"relaxfmt/internal/format"
	"relaxfmt/internal/project"
)

// settings is the effective configuration: .relaxfmt.toml overridden by
// command-line flags.
type settings struct {
	config  *project.Config
	options driver.Options
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Int("line-length", driver.DefaultLineLength, "maximum line length")
	cmd.Flags().StringArray("locals-without-parens", nil, "call written without parens, as name/arity or name/* (repeatable)")
	cmd.Flags().String("rename-deprecated-at", "", "rename calls deprecated at or before this Elixir version")
}

// loadSettings finds the configuration for start (a path or "-") and
// applies the format flags of cmd on top of it.
func loadSettings(cmd *cobra.Command, g globalFlags, start string) (*settings, error) {
	s := &settings{}
	configPath := g.configPath
	if configPath == "" {
		found, ok, err := project.FindConfig(start)
		if err != nil {
			return nil, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		cfg, err := project.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		s.config = cfg
		s.options.LineLength = cfg.Format.LineLength
		s.options.LocalsWithoutParens = append(s.options.LocalsWithoutParens, cfg.Format.LocalsWithoutParens...)
		s.options.RenameDeprecatedAt = cfg.Format.RenameDeprecatedAt
	}

	flags := cmd.Flags()
	if flags.Changed("line-length") {
		n, err := flags.GetInt("line-length")
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, fmt.Errorf("--line-length must be positive, got %d", n)
		}
		s.options.LineLength = n
	}
	specs, err := flags.GetStringArray("locals-without-parens")
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		local, err := format.ParseLocal(spec)
		if err != nil {
			return nil, fmt.Errorf("--locals-without-parens: %w", err)
		}
		s.options.LocalsWithoutParens = append(s.options.LocalsWithoutParens, local)
	}
	if flags.Changed("rename-deprecated-at") {
		v, err := flags.GetString("rename-deprecated-at")
		if err != nil {
			return nil, err
		}
		if v != "" && !format.ValidVersion(v) {
			return nil, fmt.Errorf("--rename-deprecated-at: invalid version %q", v)
		}
		s.options.RenameDeprecatedAt = v
	}
	s.options.MaxDiagnostics = g.maxDiagnostics
	return s, nil
}

// inputs returns args, or the configured inputs when args is empty.
func (s *settings) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if s.config == nil || len(s.config.Format.Inputs) == 0 {
		return nil, fmt.Errorf("no paths given and no inputs configured in %s", project.ConfigFileName)
	}
	paths, err := s.config.ExpandInputs()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: inputs matched no files", s.config.Path)
	}
	return paths, nil
}
