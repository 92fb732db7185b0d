package parser

import (
	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		if tok.Text == "fn" {
			return p.parseFn()
		}
		p.advance()
		id := p.arenas.Exprs.NewIdent(tok.Span, tok.Text)
		return p.parseCallTail(id, tok.Span)
	case token.Alias:
		p.advance()
		return p.arenas.Exprs.NewAlias(tok.Span, []string{tok.Text})
	case token.IntLit, token.FloatLit, token.StringLit, token.CharLit, token.AtomLit,
		token.KwTrue, token.KwFalse, token.KwNil:
		p.advance()
		return p.arenas.Exprs.NewLiteral(tok.Span, litKind(tok.Kind), tok.Text)
	case token.LParen:
		return p.parseParenExpr()
	case token.LBrace:
		return p.parseTuple()
	case token.LBracket:
		return p.parseList()
	case token.LtLt:
		return p.parseBits()
	case token.Percent:
		return p.parseMap()
	case token.Invalid:
		// лексер уже отрепортил
		panic(bailout{})
	case token.KeyIdent:
		p.fail(diag.SynKeywordNotLast, "keyword list must be the last argument or element")
	}
	p.fail(diag.SynExpectExpression, "expected expression, got "+describe(tok))
	return ast.NoExprID
}

func litKind(k token.Kind) ast.LitKind {
	switch k {
	case token.FloatLit:
		return ast.LitFloat
	case token.StringLit:
		return ast.LitString
	case token.CharLit:
		return ast.LitChar
	case token.AtomLit:
		return ast.LitAtom
	case token.KwTrue:
		return ast.LitTrue
	case token.KwFalse:
		return ast.LitFalse
	case token.KwNil:
		return ast.LitNil
	default:
		return ast.LitInt
	}
}

func (p *Parser) parseParenExpr() ast.ExprID {
	open := p.advance()
	saved := p.noDo
	p.noDo = 0
	inner := p.parseExpr()
	p.expectClose(token.RParen, "')'", open)
	p.noDo = saved
	return p.arenas.Exprs.NewParen(p.spanFrom(open.Span), inner)
}

// parseCallTail превращает callee в вызов, если за ним идут аргументы:
// `(` вплотную, аргументы без скобок через пробел или do-блок.
func (p *Parser) parseCallTail(callee ast.ExprID, start source.Span) ast.ExprID {
	next := p.lx.Peek()
	var data ast.ExprCallData
	switch {
	case next.Kind == token.LParen && !spaceBefore(next):
		data = ast.ExprCallData{Callee: callee, Args: p.parseParensArgs(), Parens: true}
	case startsNoParensArg(next) && !isSectionLabel(next):
		p.noDo++
		args := p.parseNoParensArgs()
		p.noDo--
		data = ast.ExprCallData{Callee: callee, Args: args}
	case next.Kind == token.KwDo && p.noDo == 0:
		data = ast.ExprCallData{Callee: callee}
	default:
		return callee
	}
	if p.noDo == 0 && p.at(token.KwDo) {
		data.Do = p.parseDoBlock()
	}
	return p.arenas.Exprs.NewCall(p.spanFrom(start), data)
}

func (p *Parser) parseParensArgs() []ast.ExprID {
	open := p.advance()
	args, _ := p.parseElements(token.RParen, open, elemOpts{})
	p.expectClose(token.RParen, "')'", open)
	return args
}

// parseNoParensArgs: `foo a, b, key: v` до конца строки.
func (p *Parser) parseNoParensArgs() []ast.ExprID {
	var args []ast.ExprID
	for {
		if p.at(token.KeyIdent) {
			kw, trailingComma := p.parseKeywordPairs()
			if trailingComma {
				p.fail(diag.SynKeywordNotLast, "keyword list must be the last argument")
			}
			return append(args, kw)
		}
		args = append(args, p.parseExpr())
		if !p.at(token.Comma) {
			return args
		}
		p.advance()
	}
}

// parseKeywordPairs читает `k: v, k2: v2`. Запятая после последней пары
// съедается; trailingComma сообщает о ней.
func (p *Parser) parseKeywordPairs() (kw ast.ExprID, trailingComma bool) {
	start := p.lx.Peek().Span
	var pairs []ast.KeywordPair
	for p.at(token.KeyIdent) {
		key := p.advance()
		value := p.parseExpr()
		pairs = append(pairs, ast.KeywordPair{Key: key.Text, KeySpan: key.Span, Value: value})
		trailingComma = false
		if !p.at(token.Comma) {
			break
		}
		p.advance()
		trailingComma = true
	}
	return p.arenas.Exprs.NewKeyword(p.spanFrom(start), pairs), trailingComma
}
