package format

import (
	"strings"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/doc"
)

func (p *printer) expr(id ast.ExprID) doc.Document {
	ex := p.b.Exprs
	switch ex.Get(id).Kind {
	case ast.ExprIdent:
		d, _ := ex.Ident(id)
		return doc.Str(d.Name)
	case ast.ExprAlias:
		d, _ := ex.Alias(id)
		return doc.Str(strings.Join(d.Segments, "."))
	case ast.ExprLit:
		d, _ := ex.Literal(id)
		return p.literal(d)
	case ast.ExprUnary:
		d, _ := ex.Unary(id)
		return p.unary(d)
	case ast.ExprBinary:
		d, _ := ex.Binary(id)
		return p.binary(d)
	case ast.ExprCall:
		d, _ := ex.Call(id)
		return p.call(id, d, false)
	case ast.ExprDot:
		d, _ := ex.Dot(id)
		return doc.Concat(p.expr(d.Target), doc.Str("."+d.Name))
	case ast.ExprAccess:
		d, _ := ex.Access(id)
		return doc.Concat(p.expr(d.Target), doc.Str("["), p.expr(d.Key), doc.Str("]"))
	case ast.ExprParen:
		d, _ := ex.Paren(id)
		return doc.Cons{Left: doc.Str("("), Right: doc.Cons{Left: p.expr(d.Inner), Right: doc.Str(")")}}
	case ast.ExprTuple:
		d, _ := ex.Container(id)
		return container("{", "}", p.items(d.Elems))
	case ast.ExprList:
		d, _ := ex.Container(id)
		items := p.items(d.Elems)
		if d.Tail.IsValid() && len(items) > 0 {
			last := len(items) - 1
			items[last] = doc.Concat(items[last], doc.Str(" | "), p.expr(d.Tail))
		}
		return container("[", "]", items)
	case ast.ExprBits:
		d, _ := ex.Container(id)
		p.inBits++
		items := p.items(d.Elems)
		p.inBits--
		return container("<<", ">>", items)
	case ast.ExprMap:
		d, _ := ex.Map(id)
		return p.mapExpr(d)
	case ast.ExprPair:
		d, _ := ex.Pair(id)
		return doc.Concat(p.expr(d.Key), doc.Str(" => "), p.expr(d.Value))
	case ast.ExprKeyword:
		d, _ := ex.Keyword(id)
		return commaList(p.keywordPairs(d))
	case ast.ExprFn:
		d, _ := ex.Fn(id)
		return p.fn(d)
	}
	return doc.Nil
}

// items печатает элементы контейнера; keyword-список раскрывается в пары.
func (p *printer) items(elems []ast.ExprID) []doc.Document {
	out := make([]doc.Document, 0, len(elems))
	for _, e := range elems {
		if kw, ok := p.b.Exprs.Keyword(e); ok {
			out = append(out, p.keywordPairs(kw)...)
			continue
		}
		out = append(out, p.expr(e))
	}
	return out
}

func (p *printer) keywordPairs(kw *ast.ExprKeywordData) []doc.Document {
	out := make([]doc.Document, len(kw.Pairs))
	for i, pair := range kw.Pairs {
		out[i] = doc.Concat(p.color(doc.Str(pair.Key), "cyan"), doc.Str(" "), p.expr(pair.Value))
	}
	return out
}

func (p *printer) mapExpr(d *ast.ExprMapData) doc.Document {
	items := p.items(d.Elems)
	if d.Update.IsValid() {
		update := p.expr(d.Update)
		if len(items) > 0 {
			items[0] = doc.Concat(update, doc.Str(" | "), items[0])
		} else {
			items = []doc.Document{update}
		}
	}
	prefix := doc.Str("%")
	if d.Struct.IsValid() {
		prefix = doc.Concat(prefix, p.expr(d.Struct))
	}
	return doc.Concat(prefix, container("{", "}", items))
}

func (p *printer) literal(d *ast.ExprLiteralData) doc.Document {
	text := doc.Str(d.Text)
	switch d.Kind {
	case ast.LitInt, ast.LitFloat:
		return p.color(text, "yellow")
	case ast.LitString, ast.LitChar:
		return p.color(text, "green")
	case ast.LitAtom:
		return p.color(text, "cyan")
	default:
		return p.color(text, "magenta")
	}
}

func (p *printer) unary(d *ast.ExprUnaryData) doc.Document {
	if d.Op == "@" {
		if call, ok := p.b.Exprs.Call(d.Operand); ok {
			return doc.Concat(doc.Str("@"), p.call(d.Operand, call, true))
		}
	}
	if d.Op == "&" {
		// &fun/arity печатается без пробелов вокруг `/`
		if bin, ok := p.b.Exprs.Binary(d.Operand); ok && bin.Op == "/" {
			return doc.Concat(doc.Str("&"), p.expr(bin.Left), doc.Str("/"), p.expr(bin.Right))
		}
	}
	op := d.Op
	if op == "not" {
		op += " "
	}
	return doc.Concat(doc.Str(op), p.expr(d.Operand))
}

var rightAssoc = map[string]bool{
	"when": true,
	"::":   true,
	"=":    true,
	"++":   true,
	"--":   true,
	"..":   true,
	"<>":   true,
}

func (p *printer) binary(d *ast.ExprBinaryData) doc.Document {
	switch {
	case d.Op == "..", d.Op == "::" && p.inBits > 0:
		return doc.Concat(p.expr(d.Left), doc.Str(d.Op), p.expr(d.Right))
	case d.Op == "|>":
		return p.pipeline(d)
	case rightAssoc[d.Op] && p.isBlock(d.Right):
		return doc.Concat(p.expr(d.Left), doc.Str(" "+d.Op+" "), p.expr(d.Right))
	case rightAssoc[d.Op]:
		return doc.GroupOf(doc.Concat(
			p.expr(d.Left),
			doc.Str(" "+d.Op),
			doc.NestBy(doc.Concat(doc.StrictBreak(" "), p.expr(d.Right)), indent),
		))
	}

	operands := p.chain(d)
	rest := make([]doc.Document, 0, 3*(len(operands)-1))
	for _, o := range operands[1:] {
		rest = append(rest, doc.Str(" "+d.Op), doc.StrictBreak(" "), p.expr(o))
	}
	return doc.GroupOf(doc.Concat(p.expr(operands[0]), doc.NestBy(doc.Concat(rest...), indent)))
}

// isBlock: выражение всегда занимает несколько строк (`x = case ... end`).
func (p *printer) isBlock(id ast.ExprID) bool {
	if call, ok := p.b.Exprs.Call(id); ok {
		return call.Do != nil
	}
	if fn, ok := p.b.Exprs.Fn(id); ok {
		return len(fn.Clauses) > 1
	}
	return false
}

// pipeline печатает `a |> b |> c`; при переносе каждая ступень начинается с `|>`.
func (p *printer) pipeline(d *ast.ExprBinaryData) doc.Document {
	operands := p.chain(d)
	parts := []doc.Document{p.expr(operands[0])}
	for _, o := range operands[1:] {
		parts = append(parts, doc.StrictBreak(" "), doc.Str("|> "), p.expr(o))
	}
	return doc.GroupOf(doc.Concat(parts...))
}

// chain разворачивает левоассоциативную цепочку одного оператора.
func (p *printer) chain(d *ast.ExprBinaryData) []ast.ExprID {
	rev := []ast.ExprID{d.Right}
	left := d.Left
	for {
		lb, ok := p.b.Exprs.Binary(left)
		if !ok || lb.Op != d.Op {
			break
		}
		rev = append(rev, lb.Right)
		left = lb.Left
	}
	rev = append(rev, left)
	out := make([]ast.ExprID, len(rev))
	for i, id := range rev {
		out[len(rev)-1-i] = id
	}
	return out
}
