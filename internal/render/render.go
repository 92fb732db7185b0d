package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"relaxfmt/internal/doc"
)

// DefaultWidth is the line length used when Options.Width is not positive.
const DefaultWidth = 98

type Options struct {
	Width int
	// Color emits ANSI sequences for color-tagged nodes.
	Color bool
}

type mode uint8

const (
	modeFlat mode = iota
	modeBreak
)

// entry — элемент стека раскладки. colorEnd закрывает цвет, открытый тегом.
type entry struct {
	indent   int
	mode     mode
	doc      doc.Document
	colorEnd bool
}

// Render returns the laid out text of d. The result has no trailing newline
// unless d ends with one.
func Render(d doc.Document, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	r := renderer{width: width, color: opts.Color}
	r.format([]entry{{indent: 0, mode: modeFlat, doc: d}})
	return r.out.String()
}

type renderer struct {
	width  int
	color  bool
	out    output
	k      int // текущая колонка
	colors []*color.Color
}

func (r *renderer) format(stack []entry) {
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.colorEnd {
			r.colors = r.colors[:len(r.colors)-1]
			continue
		}

		switch n := e.doc.(type) {
		case nil:
		case doc.Marker:
			if n == doc.Line {
				r.newline(e.indent)
			}
		case doc.Text:
			r.text(n.Content)
		case doc.Cons:
			stack = append(stack,
				entry{indent: e.indent, mode: e.mode, doc: n.Right},
				entry{indent: e.indent, mode: e.mode, doc: n.Left})
		case doc.Nest:
			stack = append(stack, entry{indent: r.nestIndent(e, n), mode: e.mode, doc: n.Inner})
		case doc.Break:
			r.brk(e, n, stack)
		case doc.Group:
			m := e.mode
			if n.Mode == doc.GroupSelf {
				m = modeBreak
				if fits(r.width, r.k, []entry{{indent: e.indent, mode: modeFlat, doc: n.Inner}}) {
					m = modeFlat
				}
			}
			stack = append(stack, entry{indent: e.indent, mode: m, doc: n.Inner})
		case doc.Force:
			stack = append(stack, entry{indent: e.indent, mode: modeBreak, doc: n.Inner})
		case doc.Tagged:
			stack = r.tagged(e, n, stack)
		}
	}
}

func (r *renderer) nestIndent(e entry, n doc.Nest) int {
	if n.Mode == doc.NestBreak && e.mode == modeFlat {
		return e.indent
	}
	switch n.Indent.Kind {
	case doc.IndentAtCursor:
		return r.k
	case doc.IndentToZero:
		return 0
	default:
		return e.indent + n.Indent.N
	}
}

func (r *renderer) brk(e entry, b doc.Break, rest []entry) {
	if e.mode == modeFlat {
		r.text(b.Sep)
		return
	}
	if b.Mode == doc.Flex {
		k := r.k + runewidth.StringWidth(b.Sep)
		if fits(r.width, k, rest) {
			r.text(b.Sep)
			return
		}
	}
	r.newline(e.indent)
}

func (r *renderer) tagged(e entry, n doc.Tagged, stack []entry) []entry {
	if n.Tag == doc.TagColor && len(n.Args) == 2 {
		if !r.color {
			return append(stack, entry{indent: e.indent, mode: e.mode, doc: n.Args[0]})
		}
		name, _ := n.Args[1].(doc.Text)
		r.colors = append(r.colors, lookupColor(name.Content))
		return append(stack,
			entry{colorEnd: true},
			entry{indent: e.indent, mode: e.mode, doc: n.Args[0]})
	}
	for i := len(n.Args) - 1; i >= 0; i-- {
		stack = append(stack, entry{indent: e.indent, mode: e.mode, doc: n.Args[i]})
	}
	return stack
}

func (r *renderer) text(s string) {
	if s == "" {
		return
	}
	if n := len(r.colors); n > 0 && r.colors[n-1] != nil {
		r.out.WriteString(r.colors[n-1].Sprint(s))
	} else {
		r.out.WriteString(s)
	}
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		r.k = runewidth.StringWidth(s[i+1:])
		return
	}
	r.k += runewidth.StringWidth(s)
}

func (r *renderer) newline(indent int) {
	r.out.newline(indent)
	r.k = indent
}

// fits проверяет, помещается ли остаток строки начиная с колонки k.
// Разрыв в режиме break заканчивает строку и значит «помещается».
// base не изменяется: развёрнутые узлы кладутся в отдельный стек.
func fits(w, k int, base []entry) bool {
	var stack []entry
	for {
		if k > w {
			return false
		}
		var e entry
		switch {
		case len(stack) > 0:
			e = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case len(base) > 0:
			e = base[len(base)-1]
			base = base[:len(base)-1]
		default:
			return true
		}
		if e.colorEnd {
			continue
		}

		switch n := e.doc.(type) {
		case nil:
		case doc.Marker:
			if n == doc.Line {
				return true
			}
		case doc.Text:
			if i := strings.IndexByte(n.Content, '\n'); i >= 0 {
				return k+runewidth.StringWidth(n.Content[:i]) <= w
			}
			k += runewidth.StringWidth(n.Content)
		case doc.Cons:
			stack = append(stack,
				entry{mode: e.mode, doc: n.Right},
				entry{mode: e.mode, doc: n.Left})
		case doc.Nest:
			stack = append(stack, entry{mode: e.mode, doc: n.Inner})
		case doc.Break:
			if e.mode == modeBreak {
				return true
			}
			k += runewidth.StringWidth(n.Sep)
		case doc.Group:
			stack = append(stack, entry{mode: modeFlat, doc: n.Inner})
		case doc.Force:
			return false
		case doc.Tagged:
			args := n.Args
			if n.Tag == doc.TagColor && len(args) == 2 {
				args = args[:1]
			}
			for i := len(args) - 1; i >= 0; i-- {
				stack = append(stack, entry{mode: e.mode, doc: args[i]})
			}
		}
	}
}
