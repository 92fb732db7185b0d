package parser

import (
	"fmt"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan.
// Комментарий перед токеном, который не начинает оператор, это ошибка.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind == token.Invalid {
		// лексер уже отрепортил
		panic(bailout{})
	}
	if !p.hasClaimed || tok.Span.Start != p.claimedAt {
		if cs := tok.Comments(); len(cs) > 0 {
			p.failAt(diag.SynCommentInExpr, cs[0].Span, "comments inside an expression are not supported")
		}
	}
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// claim отдаёт комментарии токена списку операторов.
func (p *Parser) claim(tok token.Token) {
	p.claimedAt = tok.Span.Start
	p.hasClaimed = true
}

// getDiagnosticSpan — возвращает лучший span для диагностики
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен, иначе ошибка и bailout.
func (p *Parser) expect(k token.Kind, what string) token.Token {
	if p.at(k) {
		return p.advance()
	}
	p.fail(diag.SynUnexpectedToken, fmt.Sprintf("expected %s, got %s", what, describe(p.lx.Peek())))
	return token.Token{}
}

// expectClose — как expect, но с заметкой об открывающей скобке.
func (p *Parser) expectClose(k token.Kind, what string, open token.Token) token.Token {
	if p.at(k) {
		return p.advance()
	}
	diag.ReportError(p.opts.Reporter, diag.SynUnclosedDelimiter, p.getDiagnosticSpan(),
		fmt.Sprintf("expected %s, got %s", what, describe(p.lx.Peek()))).
		WithNote(open.Span, fmt.Sprintf("%q opened here", open.Text)).
		Emit()
	panic(bailout{})
}

func (p *Parser) fail(code diag.Code, msg string) {
	p.failAt(code, p.getDiagnosticSpan(), msg)
}

func (p *Parser) failAt(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	panic(bailout{})
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	return start.Cover(p.lastSpan)
}

func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	return p.arenas.Exprs.Get(id).Span
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	default:
		return fmt.Sprintf("%q", tok.Text)
	}
}

// spaceBefore: между токеном и предыдущим есть пробел или перевод строки.
func spaceBefore(tok token.Token) bool {
	return len(tok.Leading) > 0
}
