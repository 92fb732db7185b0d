package driver

import (
	"strconv"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/format"
	"relaxfmt/internal/observ"
	"relaxfmt/internal/project"
	"relaxfmt/internal/render"
)

// DefaultLineLength is used when Options.LineLength is not positive.
const DefaultLineLength = render.DefaultWidth

// Options configures formatting of one source text.
type Options struct {
	LineLength          int
	LocalsWithoutParens []format.Local
	RenameDeprecatedAt  string
	// File names the source in diagnostics; "nofile" when empty.
	File string
	// Line is the line number of the first source line, for snippets.
	Line int
	// Highlight colors literals with ANSI escapes.
	Highlight bool
	// NoRelax skips bracket padding and yields the plain layout.
	NoRelax bool

	MaxDiagnostics int
	// Reporter receives informational diagnostics such as applied renames.
	Reporter diag.Reporter
	// Timer collects per-pass timings when set.
	Timer *observ.Timer
}

func (o Options) lineLength() int {
	if o.LineLength <= 0 {
		return DefaultLineLength
	}
	return o.LineLength
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return 256
	}
	return o.MaxDiagnostics
}

func (o Options) formatOptions() format.Options {
	return format.Options{
		LocalsWithoutParens: o.LocalsWithoutParens,
		RenameDeprecatedAt:  o.RenameDeprecatedAt,
		Highlight:           o.Highlight,
		Reporter:            o.Reporter,
	}
}

// digest identifies every option that changes the formatted bytes.
func (o Options) digest() project.Digest {
	fields := []string{
		"width=" + strconv.Itoa(o.lineLength()),
		"rename=" + o.RenameDeprecatedAt,
		"highlight=" + strconv.FormatBool(o.Highlight),
		"relax=" + strconv.FormatBool(!o.NoRelax),
	}
	for _, l := range o.LocalsWithoutParens {
		fields = append(fields, "local="+l.String())
	}
	return project.DigestStrings(fields...)
}
