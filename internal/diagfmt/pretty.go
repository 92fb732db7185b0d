package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	path   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   mk(color.FgRed, color.Bold),
			diag.SevWarning: mk(color.FgYellow, color.Bold),
			diag.SevInfo:    mk(color.FgCyan, color.Bold),
		},
		path:   mk(color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgRed, color.Bold),
		note:   mk(color.FgCyan),
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждой диагностики печатает
//
//	<path>:<line>:<col>: <sev>[<CODE>]: <Message>
//
// затем строки контекста и подчёркивание ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	pal := newPalette(opts.Color)
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		prettyOne(w, d, fs, opts, pal)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	loc := fmt.Sprintf("%s:%d:%d:", formatPath(f, opts.PathMode, opts.BaseDir), start.Line, start.Col)
	sev := pal.sev[d.Severity].Sprintf("%s[%s]:", d.Severity.Label(), d.Code.ID())
	fmt.Fprintf(w, "%s %s %s\n", pal.path.Sprint(loc), sev, d.Message)

	writeSnippet(w, f, d.Primary, opts.Context, pal)

	if !opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := fs.Get(n.Span.File)
		ns, _ := fs.Resolve(n.Span)
		fmt.Fprintf(w, "  %s %s:%d:%d: %s\n",
			pal.note.Sprint("note:"), formatPath(nf, opts.PathMode, opts.BaseDir), ns.Line, ns.Col, n.Msg)
	}
}

// writeSnippet печатает строку с ошибкой, context строк перед ней и каретку.
func writeSnippet(w io.Writer, f *source.File, sp source.Span, context int8, pal palette) {
	first := contentLine(f, sp.Start)
	line := f.GetLine(first)
	if line == "" && sp.Empty() && first > 1 && sp.Start >= uint32(len(f.Content)) {
		// конец файла: показываем последнюю непустую строку
		first--
		line = f.GetLine(first)
	}

	from := first
	for range context {
		if from <= 1 {
			break
		}
		from--
	}
	gutterWidth := len(fmt.Sprint(first + lineShift(f)))
	for n := from; n <= first; n++ {
		fmt.Fprintf(w, "%s %s\n",
			pal.gutter.Sprintf("%*d |", gutterWidth, n+lineShift(f)),
			expandTabs(f.GetLine(n)))
	}

	startCol := int(f.Position(sp.Start).Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	prefix := runewidth.StringWidth(expandTabs(line[:startCol]))
	width := 1
	if !sp.Empty() {
		endCol := startCol + int(sp.Len())
		if endCol > len(line) {
			endCol = len(line)
		}
		width = max(1, runewidth.StringWidth(expandTabs(line[startCol:endCol])))
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "%s %s%s\n",
		pal.gutter.Sprintf("%*s |", gutterWidth, ""),
		strings.Repeat(" ", prefix),
		pal.caret.Sprint(marker))
}

// contentLine — номер строки внутри Content, без учёта FirstLine.
func contentLine(f *source.File, off uint32) uint32 {
	return f.Position(off).Line - lineShift(f)
}

func lineShift(f *source.File) uint32 {
	if f.FirstLine > 1 {
		return f.FirstLine - 1
	}
	return 0
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
