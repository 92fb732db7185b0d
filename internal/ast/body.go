package ast

import "relaxfmt/internal/source"

// Comment is a `#` comment. BlankBefore records an empty line above it.
type Comment struct {
	Text        string
	Span        source.Span
	BlankBefore bool
}

// Stmt is one expression in a statement list together with the comments
// written on the lines above it. BlankBefore is an empty line between the
// last of those comments (or the previous statement) and the expression.
// LineComment is a comment written after the expression on its last line.
type Stmt struct {
	Expr        ExprID
	Comments    []Comment
	BlankBefore bool
	LineComment *Comment
	Span        source.Span
}

// Body is a statement list. Trailing holds comments after the last
// statement (before `end`, a section label or EOF).
type Body struct {
	Stmts    []Stmt
	Trailing []Comment
}

func (b Body) Empty() bool {
	return len(b.Stmts) == 0 && len(b.Trailing) == 0
}

// Clause is `args -> body` inside fn or a do-block section. A guard is
// part of the last argument as a `when` binary expression.
type Clause struct {
	Args        []ExprID
	Body        Body
	Comments    []Comment
	BlankBefore bool
	Span        source.Span
}

// Section is one labelled part of a do-block: do, else, after, rescue, catch.
// Exactly one of Body and Clauses is used.
type Section struct {
	Label   string
	Body    Body
	Clauses []Clause
	Span    source.Span
	// Trailing holds comments after the last clause.
	Trailing []Comment
}

func (s Section) HasClauses() bool {
	return len(s.Clauses) > 0
}

type DoBlock struct {
	Sections []Section
	Span     source.Span
}
