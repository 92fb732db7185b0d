package parser

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/token"
)

func (p *Parser) parseExpr() ast.ExprID {
	return p.parseBinary(precWhen)
}

// parseBinary — Pratt-цикл по таблице приоритетов.
func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parseUnary()
	for {
		tok := p.lx.Peek()
		prec, right := binaryPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			return left
		}
		if tok.NewlineBefore() && !continuesLine(tok.Kind) {
			return left
		}
		p.advance()
		next := prec + 1
		if right {
			next = prec
		}
		rhs := p.parseBinary(next)
		left = p.arenas.Exprs.NewBinary(p.exprSpan(left).Cover(p.lastSpan), tok.Text, left, rhs)
	}
}

// parseUnary — префиксные операторы связывают сильнее бинарных.
func (p *Parser) parseUnary() ast.ExprID {
	p.enter()
	defer p.leave()

	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Minus, token.Plus, token.Bang, token.KwNot, token.Caret:
		p.advance()
		operand := p.parseUnary()
		return p.arenas.Exprs.NewUnary(p.spanFrom(tok.Span), tok.Text, operand)
	case token.At:
		p.advance()
		operand := p.parsePostfix(p.parsePrimary())
		return p.arenas.Exprs.NewUnary(p.spanFrom(tok.Span), tok.Text, operand)
	case token.Amp:
		p.advance()
		if next := p.lx.Peek(); next.Kind == token.IntLit && !spaceBefore(next) {
			// &1 — аргумент захвата
			p.advance()
			lit := p.arenas.Exprs.NewLiteral(next.Span, ast.LitInt, next.Text)
			return p.arenas.Exprs.NewUnary(p.spanFrom(tok.Span), tok.Text, lit)
		}
		operand := p.parseBinary(precAssign + 1)
		return p.arenas.Exprs.NewUnary(p.spanFrom(tok.Span), tok.Text, operand)
	default:
		return p.parsePostfix(p.parsePrimary())
	}
}
