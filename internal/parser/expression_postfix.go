package parser

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// parsePostfix: `.name`, `.Alias`, `.(args)` и доступ `x[key]`.
func (p *Parser) parsePostfix(expr ast.ExprID) ast.ExprID {
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.Dot:
			p.advance()
			expr = p.parseDotTail(expr)
		case tok.Kind == token.LBracket && !spaceBefore(tok):
			open := p.advance()
			saved := p.noDo
			p.noDo = 0
			key := p.parseExpr()
			p.expectClose(token.RBracket, "']'", open)
			p.noDo = saved
			expr = p.arenas.Exprs.NewAccess(p.exprSpan(expr).Cover(p.lastSpan), expr, key)
		default:
			return expr
		}
	}
}

func (p *Parser) parseDotTail(target ast.ExprID) ast.ExprID {
	start := p.exprSpan(target)
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		dot := p.arenas.Exprs.NewDot(p.spanFrom(start), target, tok.Text)
		return p.parseCallTail(dot, start)
	case token.Alias:
		p.advance()
		if alias, ok := p.arenas.Exprs.Alias(target); ok {
			segments := append(append([]string(nil), alias.Segments...), tok.Text)
			return p.arenas.Exprs.NewAlias(p.spanFrom(start), segments)
		}
		return p.arenas.Exprs.NewDot(p.spanFrom(start), target, tok.Text)
	case token.LParen:
		if spaceBefore(tok) {
			break
		}
		dot := p.arenas.Exprs.NewDot(p.spanFrom(start), target, "")
		args := p.parseParensArgs()
		return p.arenas.Exprs.NewCall(p.spanFrom(start), ast.ExprCallData{
			Callee: dot,
			Args:   args,
			Parens: true,
		})
	}
	p.fail(diag.SynUnexpectedToken, "expected name after '.', got "+describe(tok))
	return ast.NoExprID
}
