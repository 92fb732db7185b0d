package format

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/doc"
)

// lines собирает элементы, разделённые Line; blank добавляет пустую строку.
// Пустая строка перед первым элементом не печатается.
type lines struct {
	parts []doc.Document
}

func (l *lines) add(d doc.Document, blank bool) {
	if len(l.parts) > 0 {
		l.parts = append(l.parts, doc.Line)
		if blank {
			l.parts = append(l.parts, doc.Line)
		}
	}
	l.parts = append(l.parts, d)
}

func (l *lines) comments(cs []ast.Comment) {
	for _, c := range cs {
		l.add(doc.Str(c.Text), c.BlankBefore)
	}
}

func (l *lines) empty() bool { return len(l.parts) == 0 }

func (l *lines) doc() doc.Document { return doc.Concat(l.parts...) }

func (p *printer) body(b ast.Body) doc.Document {
	var l lines
	p.stmts(&l, b)
	return l.doc()
}

func (p *printer) stmts(l *lines, b ast.Body) {
	for _, s := range b.Stmts {
		l.comments(s.Comments)
		d := p.expr(s.Expr)
		if s.LineComment != nil {
			d = doc.Concat(d, doc.Str(" "), doc.Str(s.LineComment.Text))
		}
		l.add(d, s.BlankBefore)
	}
	l.comments(b.Trailing)
}

// simpleBody: один оператор без комментариев можно держать на строке с `->`.
func simpleBody(b ast.Body) bool {
	return len(b.Stmts) == 1 && len(b.Trailing) == 0 &&
		len(b.Stmts[0].Comments) == 0 && b.Stmts[0].LineComment == nil
}

func (p *printer) clauseHead(c ast.Clause) doc.Document {
	if len(c.Args) == 0 {
		return doc.Str("->")
	}
	args := make([]doc.Document, len(c.Args))
	for i, a := range c.Args {
		args[i] = p.expr(a)
	}
	return doc.Concat(commaList(args), doc.Str(" ->"))
}

// clause печатает `args -> body`. Короткое тело остаётся на той же строке,
// если помещается.
func (p *printer) clause(c ast.Clause) doc.Document {
	head := p.clauseHead(c)
	switch {
	case c.Body.Empty():
		return head
	case simpleBody(c.Body):
		body := p.expr(c.Body.Stmts[0].Expr)
		return doc.GroupOf(doc.Concat(head, doc.NestBy(doc.Concat(doc.StrictBreak(" "), body), indent)))
	default:
		return doc.Concat(head, doc.NestBy(doc.Concat(doc.Line, p.body(c.Body)), indent))
	}
}

func (p *printer) clauses(cs []ast.Clause, trailing []ast.Comment) doc.Document {
	var l lines
	for _, c := range cs {
		l.comments(c.Comments)
		l.add(p.clause(c), c.BlankBefore)
	}
	l.comments(trailing)
	return l.doc()
}

// doBlock печатает ` do ... end`; блок всегда разбит на строки.
func (p *printer) doBlock(blk *ast.DoBlock) doc.Document {
	parts := []doc.Document{doc.Str(" do")}
	for i, sec := range blk.Sections {
		if i > 0 {
			parts = append(parts, doc.Line, doc.Str(sec.Label))
		}
		var inner doc.Document
		if sec.HasClauses() {
			inner = p.clauses(sec.Clauses, sec.Trailing)
		} else if !sec.Body.Empty() {
			inner = p.body(sec.Body)
		}
		if inner != nil {
			parts = append(parts, doc.NestBy(doc.Concat(doc.Line, inner), indent))
		}
	}
	parts = append(parts, doc.Line, doc.Str("end"))
	return doc.ForceOf(doc.Concat(parts...))
}

func (p *printer) fn(data *ast.ExprFnData) doc.Document {
	if len(data.Clauses) == 1 && len(data.Trailing) == 0 {
		c := data.Clauses[0]
		if len(c.Comments) == 0 && (c.Body.Empty() || simpleBody(c.Body)) {
			head := doc.Str("fn ->")
			if len(c.Args) > 0 {
				head = doc.Concat(doc.Str("fn "), p.clauseHead(c))
			}
			if c.Body.Empty() {
				return doc.GroupOf(doc.Concat(head, doc.StrictBreak(" "), doc.Str("end")))
			}
			body := p.expr(c.Body.Stmts[0].Expr)
			return doc.GroupOf(doc.Concat(
				head,
				doc.NestBy(doc.Concat(doc.StrictBreak(" "), body), indent),
				doc.StrictBreak(" "),
				doc.Str("end"),
			))
		}
	}
	return doc.ForceOf(doc.Concat(
		doc.Str("fn"),
		doc.NestBy(doc.Concat(doc.Line, p.clauses(data.Clauses, data.Trailing)), indent),
		doc.Line,
		doc.Str("end"),
	))
}
