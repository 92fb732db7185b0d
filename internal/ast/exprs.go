package ast

import (
	"relaxfmt/internal/source"
)

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena      *Arena[Expr]
	Idents     *Arena[ExprIdentData]
	Aliases    *Arena[ExprAliasData]
	Literals   *Arena[ExprLiteralData]
	Unaries    *Arena[ExprUnaryData]
	Binaries   *Arena[ExprBinaryData]
	Calls      *Arena[ExprCallData]
	Dots       *Arena[ExprDotData]
	Accesses   *Arena[ExprAccessData]
	Parens     *Arena[ExprParenData]
	Containers *Arena[ExprContainerData]
	Maps       *Arena[ExprMapData]
	Pairs      *Arena[ExprPairData]
	Keywords   *Arena[ExprKeywordData]
	Fns        *Arena[ExprFnData]
}

// NewExprs creates a new Exprs with per-kind arenas preallocated using capHint as the initial capacity.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Exprs{
		Arena:      NewArena[Expr](capHint),
		Idents:     NewArena[ExprIdentData](capHint),
		Aliases:    NewArena[ExprAliasData](small),
		Literals:   NewArena[ExprLiteralData](capHint),
		Unaries:    NewArena[ExprUnaryData](small),
		Binaries:   NewArena[ExprBinaryData](small),
		Calls:      NewArena[ExprCallData](small),
		Dots:       NewArena[ExprDotData](small),
		Accesses:   NewArena[ExprAccessData](small),
		Parens:     NewArena[ExprParenData](small),
		Containers: NewArena[ExprContainerData](small),
		Maps:       NewArena[ExprMapData](small),
		Pairs:      NewArena[ExprPairData](small),
		Keywords:   NewArena[ExprKeywordData](small),
		Fns:        NewArena[ExprFnData](small),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload uint32) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

func payloadOf[T any](e *Exprs, arena *Arena[T], id ExprID, kinds ...ExprKind) (*T, bool) {
	expr := e.Get(id)
	if expr == nil {
		return nil, false
	}
	for _, k := range kinds {
		if expr.Kind == k {
			return arena.Get(uint32(expr.Payload)), true
		}
	}
	return nil, false
}

func (e *Exprs) NewIdent(span source.Span, name string) ExprID {
	return e.new(ExprIdent, span, e.Idents.Allocate(ExprIdentData{Name: name}))
}

func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	return payloadOf(e, e.Idents, id, ExprIdent)
}

func (e *Exprs) NewAlias(span source.Span, segments []string) ExprID {
	return e.new(ExprAlias, span, e.Aliases.Allocate(ExprAliasData{Segments: segments}))
}

func (e *Exprs) Alias(id ExprID) (*ExprAliasData, bool) {
	return payloadOf(e, e.Aliases, id, ExprAlias)
}

func (e *Exprs) NewLiteral(span source.Span, kind LitKind, text string) ExprID {
	return e.new(ExprLit, span, e.Literals.Allocate(ExprLiteralData{Kind: kind, Text: text}))
}

func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	return payloadOf(e, e.Literals, id, ExprLit)
}

func (e *Exprs) NewUnary(span source.Span, op string, operand ExprID) ExprID {
	return e.new(ExprUnary, span, e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand}))
}

func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	return payloadOf(e, e.Unaries, id, ExprUnary)
}

func (e *Exprs) NewBinary(span source.Span, op string, left, right ExprID) ExprID {
	return e.new(ExprBinary, span, e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right}))
}

func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	return payloadOf(e, e.Binaries, id, ExprBinary)
}

func (e *Exprs) NewCall(span source.Span, data ExprCallData) ExprID {
	return e.new(ExprCall, span, e.Calls.Allocate(data))
}

func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	return payloadOf(e, e.Calls, id, ExprCall)
}

func (e *Exprs) NewDot(span source.Span, target ExprID, name string) ExprID {
	return e.new(ExprDot, span, e.Dots.Allocate(ExprDotData{Target: target, Name: name}))
}

func (e *Exprs) Dot(id ExprID) (*ExprDotData, bool) {
	return payloadOf(e, e.Dots, id, ExprDot)
}

func (e *Exprs) NewAccess(span source.Span, target, key ExprID) ExprID {
	return e.new(ExprAccess, span, e.Accesses.Allocate(ExprAccessData{Target: target, Key: key}))
}

func (e *Exprs) Access(id ExprID) (*ExprAccessData, bool) {
	return payloadOf(e, e.Accesses, id, ExprAccess)
}

func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	return e.new(ExprParen, span, e.Parens.Allocate(ExprParenData{Inner: inner}))
}

func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	return payloadOf(e, e.Parens, id, ExprParen)
}

// NewContainer allocates a tuple, list or bitstring.
func (e *Exprs) NewContainer(kind ExprKind, span source.Span, elems []ExprID, tail ExprID) ExprID {
	return e.new(kind, span, e.Containers.Allocate(ExprContainerData{Elems: elems, Tail: tail}))
}

func (e *Exprs) Container(id ExprID) (*ExprContainerData, bool) {
	return payloadOf(e, e.Containers, id, ExprTuple, ExprList, ExprBits)
}

func (e *Exprs) NewMap(span source.Span, data ExprMapData) ExprID {
	return e.new(ExprMap, span, e.Maps.Allocate(data))
}

func (e *Exprs) Map(id ExprID) (*ExprMapData, bool) {
	return payloadOf(e, e.Maps, id, ExprMap)
}

func (e *Exprs) NewPair(span source.Span, key, value ExprID) ExprID {
	return e.new(ExprPair, span, e.Pairs.Allocate(ExprPairData{Key: key, Value: value}))
}

func (e *Exprs) Pair(id ExprID) (*ExprPairData, bool) {
	return payloadOf(e, e.Pairs, id, ExprPair)
}

func (e *Exprs) NewKeyword(span source.Span, pairs []KeywordPair) ExprID {
	return e.new(ExprKeyword, span, e.Keywords.Allocate(ExprKeywordData{Pairs: pairs}))
}

func (e *Exprs) Keyword(id ExprID) (*ExprKeywordData, bool) {
	return payloadOf(e, e.Keywords, id, ExprKeyword)
}

func (e *Exprs) NewFn(span source.Span, data ExprFnData) ExprID {
	return e.new(ExprFn, span, e.Fns.Allocate(data))
}

func (e *Exprs) Fn(id ExprID) (*ExprFnData, bool) {
	return payloadOf(e, e.Fns, id, ExprFn)
}

// CallName returns the local name of a call (`foo` in `foo(x)`) or "" for
// remote and anonymous calls.
func (e *Exprs) CallName(id ExprID) string {
	call, ok := e.Call(id)
	if !ok {
		return ""
	}
	ident, ok := e.Ident(call.Callee)
	if !ok {
		return ""
	}
	return ident.Name
}
