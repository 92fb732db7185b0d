package parser

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/token"
)

// elemOpts — что разрешено внутри скобок помимо выражений.
type elemOpts struct {
	tail   bool // [h | t]
	pairs  bool // %{k => v}
	update bool // %{m | k: v}
}

// parseElements читает элементы до close, не съедая его.
// Второе значение — хвост списка или обновляемая карта.
func (p *Parser) parseElements(close token.Kind, open token.Token, opts elemOpts) ([]ast.ExprID, ast.ExprID) {
	saved := p.noDo
	p.noDo = 0
	defer func() { p.noDo = saved }()

	var elems []ast.ExprID
	extra := ast.NoExprID
	for !p.at(close) {
		if p.at(token.KeyIdent) {
			kw, _ := p.parseKeywordPairs()
			elems = append(elems, kw)
			if !p.at(close) {
				p.fail(diag.SynKeywordNotLast, "keyword list must be the last element")
			}
			break
		}

		e := p.parseExpr()
		if opts.pairs && p.at(token.FatArrow) {
			p.advance()
			value := p.parseExpr()
			e = p.arenas.Exprs.NewPair(p.exprSpan(e).Cover(p.lastSpan), e, value)
		}

		if p.at(token.Pipe) {
			switch {
			case opts.tail:
				p.advance()
				elems = append(elems, e)
				extra = p.parseExpr()
				return elems, extra
			case opts.update && len(elems) == 0 && !extra.IsValid():
				p.advance()
				extra = e
				continue
			default:
				p.fail(diag.SynUnexpectedToken, "unexpected '|'")
			}
		}

		elems = append(elems, e)
		if !p.at(token.Comma) {
			break
		}
		p.advance()
	}
	return elems, extra
}

func (p *Parser) parseTuple() ast.ExprID {
	open := p.advance()
	elems, _ := p.parseElements(token.RBrace, open, elemOpts{})
	p.expectClose(token.RBrace, "'}'", open)
	return p.arenas.Exprs.NewContainer(ast.ExprTuple, p.spanFrom(open.Span), elems, ast.NoExprID)
}

func (p *Parser) parseList() ast.ExprID {
	open := p.advance()
	elems, tail := p.parseElements(token.RBracket, open, elemOpts{tail: true})
	p.expectClose(token.RBracket, "']'", open)
	return p.arenas.Exprs.NewContainer(ast.ExprList, p.spanFrom(open.Span), elems, tail)
}

func (p *Parser) parseBits() ast.ExprID {
	open := p.advance()
	elems, _ := p.parseElements(token.GtGt, open, elemOpts{})
	p.expectClose(token.GtGt, "'>>'", open)
	return p.arenas.Exprs.NewContainer(ast.ExprBits, p.spanFrom(open.Span), elems, ast.NoExprID)
}

// parseMap: `%{...}` или `%Name{...}`.
func (p *Parser) parseMap() ast.ExprID {
	pct := p.advance()
	var data ast.ExprMapData
	if p.at(token.Alias) && !spaceBefore(p.lx.Peek()) {
		data.Struct = p.parseAliasPath()
	}
	if !p.at(token.LBrace) || spaceBefore(p.lx.Peek()) {
		p.fail(diag.SynUnexpectedToken, "expected '{' after '%', got "+describe(p.lx.Peek()))
	}
	open := p.advance()
	data.Elems, data.Update = p.parseElements(token.RBrace, open, elemOpts{pairs: true, update: true})
	p.expectClose(token.RBrace, "'}'", open)
	return p.arenas.Exprs.NewMap(p.spanFrom(pct.Span), data)
}

// parseAliasPath читает Foo.Bar.Baz без вызовов.
func (p *Parser) parseAliasPath() ast.ExprID {
	first := p.advance()
	segments := []string{first.Text}
	for p.at(token.Dot) {
		p.advance()
		seg := p.expect(token.Alias, "module name")
		segments = append(segments, seg.Text)
	}
	return p.arenas.Exprs.NewAlias(p.spanFrom(first.Span), segments)
}
