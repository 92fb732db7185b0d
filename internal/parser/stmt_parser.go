package parser

import (
	"strings"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// block — содержимое тела: либо операторы, либо клаузы `args -> body`.
type block struct {
	Body    ast.Body
	Clauses []ast.Clause
	// Trailing — комментарии после последней клаузы.
	Trailing []ast.Comment
}

// target возвращает тело, в которое сейчас добавляются операторы.
func (b *block) target() *ast.Body {
	if n := len(b.Clauses); n > 0 {
		return &b.Clauses[n-1].Body
	}
	return &b.Body
}

func (b *block) lastStmt() *ast.Stmt {
	body := b.target()
	if n := len(body.Stmts); n > 0 {
		return &body.Stmts[n-1]
	}
	return nil
}

// parseBlockContents разбирает операторы до стоп-токена или EOF.
// Стоп-токен не съедается.
func (p *Parser) parseBlockContents(stop func(token.Token) bool) block {
	var b block
	for {
		tok := p.lx.Peek()
		prev := b.lastStmt()
		line, comments, blank := splitLeading(tok, prev != nil)
		if line != nil {
			prev.LineComment = line
		}
		p.claim(tok)

		if tok.Kind == token.EOF || stop(tok) {
			if len(b.Clauses) > 0 {
				b.Trailing = comments
			} else {
				b.Body.Trailing = comments
			}
			return b
		}
		if tok.Kind == token.Semicolon {
			p.advance()
			continue
		}

		exprs := p.parseStmtExprs()
		if p.at(token.Arrow) {
			arrow := p.advance()
			if len(b.Clauses) == 0 && len(b.Body.Stmts) > 0 {
				p.failAt(diag.SynUnexpectedToken, arrow.Span, "unexpected '->' after statements")
			}
			b.Clauses = append(b.Clauses, ast.Clause{
				Args:        exprs,
				Comments:    comments,
				BlankBefore: blank,
				Span:        p.spanFrom(tok.Span),
			})
			continue
		}
		if len(exprs) != 1 {
			p.fail(diag.SynUnexpectedToken, "expected '->' after clause arguments")
		}

		body := b.target()
		body.Stmts = append(body.Stmts, ast.Stmt{
			Expr:        exprs[0],
			Comments:    comments,
			BlankBefore: blank,
			Span:        p.spanFrom(tok.Span),
		})
		if n := len(b.Clauses); n > 0 {
			c := &b.Clauses[n-1]
			c.Span = c.Span.Cover(p.lastSpan)
		}
		p.endStatement(stop)
	}
}

// parseStmtExprs читает одно выражение или голову клаузы `a, b ->`.
func (p *Parser) parseStmtExprs() []ast.ExprID {
	if p.at(token.Arrow) {
		return nil
	}
	out := []ast.ExprID{p.parseExpr()}
	for p.at(token.Comma) {
		p.advance()
		out = append(out, p.parseExpr())
	}
	return out
}

// endStatement: оператор заканчивается переводом строки, ';' или стоп-токеном.
func (p *Parser) endStatement(stop func(token.Token) bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.EOF, stop(tok):
	case tok.Kind == token.Semicolon:
		p.claim(tok)
		p.advance()
	case tok.NewlineBefore():
	default:
		p.fail(diag.SynUnexpectedToken, "unexpected "+describe(tok)+", expected end of statement")
	}
}

// splitLeading раскладывает комментарии перед токеном.
// Первый комментарий до перевода строки — хвостовой для предыдущего оператора.
// blank — пустая строка между последним комментарием и токеном.
func splitLeading(tok token.Token, hasPrev bool) (line *ast.Comment, comments []ast.Comment, blank bool) {
	nl := 0
	sawNewline := false
	for _, tr := range tok.Leading {
		switch tr.Kind {
		case token.TriviaNewline:
			nl += strings.Count(tr.Text, "\n")
			sawNewline = true
		case token.TriviaLineComment:
			c := ast.Comment{Text: strings.TrimRight(tr.Text, " \t"), Span: tr.Span}
			if !sawNewline && hasPrev && line == nil && len(comments) == 0 {
				line = &c
				nl = 0
				continue
			}
			c.BlankBefore = nl >= 2
			comments = append(comments, c)
			nl = 0
		}
	}
	return line, comments, nl >= 2
}

var sectionLabels = map[string]struct{}{
	"else":   {},
	"after":  {},
	"rescue": {},
	"catch":  {},
}

func isSectionLabel(tok token.Token) bool {
	if tok.Kind != token.Ident {
		return false
	}
	_, ok := sectionLabels[tok.Text]
	return ok
}

func isDoBlockStop(tok token.Token) bool {
	return tok.Kind == token.KwEnd || isSectionLabel(tok)
}

func isEnd(tok token.Token) bool {
	return tok.Kind == token.KwEnd
}

// parseDoBlock разбирает `do ... [else ...] end`; текущий токен — do.
func (p *Parser) parseDoBlock() *ast.DoBlock {
	doTok := p.advance()
	saved := p.noDo
	p.noDo = 0

	blk := &ast.DoBlock{}
	label, labelSpan := "do", doTok.Span
	for {
		c := p.parseBlockContents(isDoBlockStop)
		blk.Sections = append(blk.Sections, ast.Section{
			Label:    label,
			Body:     c.Body,
			Clauses:  c.Clauses,
			Trailing: c.Trailing,
			Span:     p.spanFrom(labelSpan),
		})
		tok := p.lx.Peek()
		if tok.Kind == token.KwEnd {
			p.advance()
			break
		}
		if isSectionLabel(tok) {
			p.advance()
			label, labelSpan = tok.Text, tok.Span
			continue
		}
		p.missingEnd(doTok, "do-block")
	}

	p.noDo = saved
	blk.Span = p.spanFrom(doTok.Span)
	return blk
}

// parseFn разбирает `fn clauses end`; текущий токен — fn.
func (p *Parser) parseFn() ast.ExprID {
	fnTok := p.advance()
	saved := p.noDo
	p.noDo = 0

	c := p.parseBlockContents(isEnd)
	if len(c.Clauses) == 0 {
		p.failAt(diag.SynUnexpectedToken, fnTok.Span, "fn requires at least one '->' clause")
	}
	if !p.at(token.KwEnd) {
		p.missingEnd(fnTok, "fn")
	}
	p.advance()

	p.noDo = saved
	return p.arenas.Exprs.NewFn(p.spanFrom(fnTok.Span), ast.ExprFnData{
		Clauses:  c.Clauses,
		Trailing: c.Trailing,
	})
}

func (p *Parser) missingEnd(open token.Token, what string) {
	diag.ReportError(p.opts.Reporter, diag.SynMissingEnd, p.getDiagnosticSpan(), "missing 'end' for "+what).
		WithNote(open.Span, what+" opened here").
		Emit()
	panic(bailout{})
}

