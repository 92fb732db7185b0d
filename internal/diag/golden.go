package diag

import (
	"cmp"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"relaxfmt/internal/source"
)

// shortLine is one rendered line: `sev CODE path:line:col message`.
type shortLine struct {
	label string
	path  string
	pos   source.LineCol
	text  string
}

func (l shortLine) String() string {
	return fmt.Sprintf("%s %s:%d:%d %s", l.label, l.path, l.pos.Line, l.pos.Col, l.text)
}

// shortEntry is a diagnostic with its notes. Notes stay under their parent
// whatever their position.
type shortEntry struct {
	head  shortLine
	sev   Severity
	code  string
	notes []shortLine
}

// FormatGoldenDiagnostics renders diagnostics one line each, in the form
// `error SYN2002 lib/a.ex:3:7 expected ')'`, followed by `note` lines when
// includeNotes is set. Diagnostics are ordered by path and position; the
// result has no trailing newline and is empty when nothing resolves.
func FormatGoldenDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	entries := make([]shortEntry, 0, len(diags))
	for i := range diags {
		d := &diags[i]
		path, pos, ok := locate(fs, d.Primary)
		if !ok {
			continue
		}
		e := shortEntry{
			head: shortLine{label: d.Severity.Label() + " " + d.Code.ID(), path: path, pos: pos, text: oneLine(d.Message)},
			sev:  d.Severity,
			code: d.Code.ID(),
		}
		if includeNotes {
			for _, n := range d.Notes {
				if npath, npos, ok := locate(fs, n.Span); ok {
					e.notes = append(e.notes, shortLine{label: "note " + e.code, path: npath, pos: npos, text: oneLine(n.Msg)})
				}
			}
		}
		entries = append(entries, e)
	}

	slices.SortStableFunc(entries, func(a, b shortEntry) int {
		return cmp.Or(
			cmp.Compare(a.head.path, b.head.path),
			cmp.Compare(a.head.pos.Line, b.head.pos.Line),
			cmp.Compare(a.head.pos.Col, b.head.pos.Col),
			// Ошибки раньше предупреждений на одной позиции
			cmp.Compare(b.sev, a.sev),
			cmp.Compare(a.code, b.code),
			cmp.Compare(a.head.text, b.head.text),
		)
	})

	var lines []string
	for _, e := range entries {
		lines = append(lines, e.head.String())
		for _, n := range e.notes {
			lines = append(lines, n.String())
		}
	}
	return strings.Join(lines, "\n")
}

// locate resolves a span to a slash-separated path and start position.
// Absolute paths of real files are shown relative to the working directory.
func locate(fs *source.FileSet, span source.Span) (string, source.LineCol, bool) {
	if int(span.File) >= fs.Len() {
		return "", source.LineCol{}, false
	}
	file := fs.Get(span.File)
	path := file.Path
	if file.Flags&source.FileVirtual == 0 && filepath.IsAbs(path) {
		path = file.FormatPath("relative", "")
	}
	path = filepath.ToSlash(path)
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	start, _ := fs.Resolve(span)
	return path, start, true
}

// oneLine folds a multi-line message onto a single line.
func oneLine(msg string) string {
	return strings.Join(strings.Fields(strings.NewReplacer("\r\n", "\n", "\r", "\n").Replace(msg)), " ")
}
