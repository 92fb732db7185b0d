package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/format"
)

// ErrInvalidConfig matches every *ConfigError via errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigError points at the offending key of a configuration file.
type ConfigError struct {
	Path string
	Key  string
	Msg  string
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Path, e.Key, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// Code is the diagnostic code reported for configuration problems.
func (e *ConfigError) Code() diag.Code { return diag.ProjConfigInvalid }

// FormatConfig is the validated [format] table.
type FormatConfig struct {
	LineLength          int
	LocalsWithoutParens []format.Local
	RenameDeprecatedAt  string
	Inputs              []string
}

// Config is a loaded .relaxfmt.toml.
type Config struct {
	Path   string
	Dir    string
	Format FormatConfig

	// Has* report which keys were present, so CLI flags can tell an explicit
	// value from a zero one.
	HasLineLength bool
	HasLocals     bool
	HasRename     bool
}

type rawConfig struct {
	Format struct {
		LineLength          int      `toml:"line_length"`
		LocalsWithoutParens []string `toml:"locals_without_parens"`
		RenameDeprecatedAt  string   `toml:"rename_deprecated_at"`
		Inputs              []string `toml:"inputs"`
	} `toml:"format"`
}

// LoadConfig parses and validates the configuration file at path.
func LoadConfig(path string) (*Config, error) {
	var raw rawConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		var perr toml.ParseError
		if errors.As(err, &perr) {
			msg := fmt.Sprintf("line %d: %s", perr.Position.Line, perr.Message)
			if perr.Message == "" {
				// Lexer errors keep their text in the wrapped error only.
				msg = strings.TrimPrefix(perr.Error(), "toml: ")
			}
			return nil, &ConfigError{Path: path, Msg: msg}
		}
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, &ConfigError{Path: path, Key: keys[0], Msg: "unknown key"}
	}

	cfg := &Config{
		Path:          path,
		Dir:           filepath.Dir(path),
		HasLineLength: meta.IsDefined("format", "line_length"),
		HasLocals:     meta.IsDefined("format", "locals_without_parens"),
		HasRename:     meta.IsDefined("format", "rename_deprecated_at"),
	}
	f := raw.Format

	if cfg.HasLineLength && f.LineLength <= 0 {
		return nil, &ConfigError{Path: path, Key: "format.line_length", Msg: fmt.Sprintf("must be positive, got %d", f.LineLength)}
	}
	cfg.Format.LineLength = f.LineLength

	for _, spec := range f.LocalsWithoutParens {
		local, err := format.ParseLocal(spec)
		if err != nil {
			return nil, &ConfigError{Path: path, Key: "format.locals_without_parens", Msg: err.Error()}
		}
		cfg.Format.LocalsWithoutParens = append(cfg.Format.LocalsWithoutParens, local)
	}

	version := strings.TrimSpace(f.RenameDeprecatedAt)
	if cfg.HasRename && !format.ValidVersion(version) {
		return nil, &ConfigError{Path: path, Key: "format.rename_deprecated_at", Msg: fmt.Sprintf("invalid version %q", f.RenameDeprecatedAt)}
	}
	cfg.Format.RenameDeprecatedAt = version

	for _, pattern := range f.Inputs {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, &ConfigError{Path: path, Key: "format.inputs", Msg: fmt.Sprintf("bad pattern %q", pattern)}
		}
		cfg.Format.Inputs = append(cfg.Format.Inputs, pattern)
	}
	return cfg, nil
}

// ExpandInputs resolves the inputs patterns relative to the config directory.
// Matches are sorted and deduplicated; a pattern without matches is ignored.
func (c *Config) ExpandInputs() ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range c.Format.Inputs {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(c.Dir, pattern)
		}
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: format.inputs: %w", c.Path, err)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}
