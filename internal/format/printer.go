package format

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/doc"
)

const indent = 2

type printer struct {
	b        *ast.Builder
	opts     Options
	locals   map[string][]int
	renameAt string
	// inBits > 0 while printing bitstring segments: `x::8` keeps no spaces.
	inBits int
}

// Build prints file into a document tree. The tree carries no trailing
// newline; callers writing files append one.
func Build(b *ast.Builder, file ast.FileID, opts Options) doc.Document {
	p := newPrinter(b, opts)
	return p.body(b.Files.Get(file).Body)
}

// BuildExpr prints a single expression.
func BuildExpr(b *ast.Builder, id ast.ExprID, opts Options) doc.Document {
	return newPrinter(b, opts).expr(id)
}

func newPrinter(b *ast.Builder, opts Options) *printer {
	p := &printer{
		b:      b,
		opts:   opts,
		locals: make(map[string][]int),
	}
	for _, l := range DefaultLocals() {
		p.locals[l.Name] = append(p.locals[l.Name], l.Arity)
	}
	for _, l := range opts.LocalsWithoutParens {
		p.locals[l.Name] = append(p.locals[l.Name], l.Arity)
	}
	if opts.RenameDeprecatedAt != "" && ValidVersion(opts.RenameDeprecatedAt) {
		p.renameAt = canonicalVersion(opts.RenameDeprecatedAt)
	}
	return p
}

func (p *printer) localWithoutParens(name string, arity int) bool {
	for _, a := range p.locals[name] {
		if a == AnyArity || a == arity {
			return true
		}
	}
	return false
}

// container печатает скобочную конструкцию: пустую как `()`, непустую
// с переносом после open и перед close.
func container(open, close string, items []doc.Document) doc.Document {
	if len(items) == 0 {
		return doc.GroupOf(doc.Cons{Left: doc.Str(open), Right: doc.Str(close)})
	}
	inner := doc.Concat(doc.Str(open), doc.StrictBreak(""), commaList(items))
	return doc.GroupOf(doc.Cons{
		Left:  doc.Nest{Inner: inner, Indent: doc.IndentBy(indent), Mode: doc.NestAlways},
		Right: doc.Cons{Left: doc.StrictBreak(""), Right: doc.Str(close)},
	})
}

func commaList(items []doc.Document) doc.Document {
	return doc.Join(items, doc.Concat(doc.Str(","), doc.StrictBreak(" ")))
}

func (p *printer) color(d doc.Document, name string) doc.Document {
	if !p.opts.Highlight {
		return d
	}
	return doc.Color(d, name)
}
