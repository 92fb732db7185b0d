package ast

import (
	"relaxfmt/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprAlias
	ExprLit
	ExprUnary
	ExprBinary
	ExprCall
	ExprDot
	ExprAccess
	ExprParen
	ExprTuple
	ExprList
	ExprBits
	ExprMap
	ExprPair
	ExprKeyword
	ExprFn
)

var exprKindNames = [...]string{
	ExprIdent:   "Ident",
	ExprAlias:   "Alias",
	ExprLit:     "Lit",
	ExprUnary:   "Unary",
	ExprBinary:  "Binary",
	ExprCall:    "Call",
	ExprDot:     "Dot",
	ExprAccess:  "Access",
	ExprParen:   "Paren",
	ExprTuple:   "Tuple",
	ExprList:    "List",
	ExprBits:    "Bits",
	ExprMap:     "Map",
	ExprPair:    "Pair",
	ExprKeyword: "Keyword",
	ExprFn:      "Fn",
}

func (k ExprKind) String() string {
	if int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "Expr(?)"
}

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}
