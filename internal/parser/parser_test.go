package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/parser"
	"relaxfmt/internal/source"
)

type parsed struct {
	b    *ast.Builder
	file *ast.File
	bag  *diag.Bag
	ok   bool
}

func parseString(t *testing.T, src string) parsed {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ex", []byte(src))
	bag := diag.NewBag(0)
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs.Get(id), b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return parsed{b: b, file: b.Files.Get(res.File), bag: bag, ok: res.Ok}
}

func mustParse(t *testing.T, src string) parsed {
	t.Helper()
	p := parseString(t, src)
	if !p.ok || p.bag.Len() > 0 {
		t.Fatalf("parse %q failed: %v", src, p.bag.Items())
	}
	return p
}

// dump печатает выражение в виде s-выражения для компактных проверок.
func (p parsed) dump(id ast.ExprID) string {
	e := p.b.Exprs
	switch p.b.Exprs.Get(id).Kind {
	case ast.ExprIdent:
		d, _ := e.Ident(id)
		return d.Name
	case ast.ExprAlias:
		d, _ := e.Alias(id)
		return strings.Join(d.Segments, ".")
	case ast.ExprLit:
		d, _ := e.Literal(id)
		return d.Text
	case ast.ExprUnary:
		d, _ := e.Unary(id)
		return fmt.Sprintf("(%s %s)", d.Op, p.dump(d.Operand))
	case ast.ExprBinary:
		d, _ := e.Binary(id)
		return fmt.Sprintf("(%s %s %s)", d.Op, p.dump(d.Left), p.dump(d.Right))
	case ast.ExprCall:
		d, _ := e.Call(id)
		head := "call-np"
		if d.Parens {
			head = "call"
		}
		parts := []string{head, p.dump(d.Callee)}
		parts = append(parts, p.dumpAll(d.Args)...)
		if d.Do != nil {
			parts = append(parts, p.dumpDo(d.Do))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprDot:
		d, _ := e.Dot(id)
		return fmt.Sprintf("(. %s %s)", p.dump(d.Target), d.Name)
	case ast.ExprAccess:
		d, _ := e.Access(id)
		return fmt.Sprintf("(access %s %s)", p.dump(d.Target), p.dump(d.Key))
	case ast.ExprParen:
		d, _ := e.Paren(id)
		return fmt.Sprintf("(paren %s)", p.dump(d.Inner))
	case ast.ExprTuple, ast.ExprList, ast.ExprBits:
		d, _ := e.Container(id)
		open, close := "{", "}"
		switch p.b.Exprs.Get(id).Kind {
		case ast.ExprList:
			open, close = "[", "]"
		case ast.ExprBits:
			open, close = "<<", ">>"
		}
		s := open + strings.Join(p.dumpAll(d.Elems), " ")
		if d.Tail.IsValid() {
			s += " | " + p.dump(d.Tail)
		}
		return s + close
	case ast.ExprMap:
		d, _ := e.Map(id)
		s := "%"
		if d.Struct.IsValid() {
			s += p.dump(d.Struct)
		}
		s += "{"
		if d.Update.IsValid() {
			s += p.dump(d.Update) + " | "
		}
		return s + strings.Join(p.dumpAll(d.Elems), " ") + "}"
	case ast.ExprPair:
		d, _ := e.Pair(id)
		return fmt.Sprintf("(=> %s %s)", p.dump(d.Key), p.dump(d.Value))
	case ast.ExprKeyword:
		d, _ := e.Keyword(id)
		parts := []string{"kw"}
		for _, pair := range d.Pairs {
			parts = append(parts, pair.Key, p.dump(pair.Value))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ast.ExprFn:
		d, _ := e.Fn(id)
		parts := []string{"fn"}
		for _, c := range d.Clauses {
			parts = append(parts, p.dumpClause(c))
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return "?"
}

func (p parsed) dumpAll(ids []ast.ExprID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = p.dump(id)
	}
	return out
}

func (p parsed) dumpBody(b ast.Body) string {
	parts := make([]string, len(b.Stmts))
	for i, s := range b.Stmts {
		parts[i] = p.dump(s.Expr)
	}
	return strings.Join(parts, "; ")
}

func (p parsed) dumpClause(c ast.Clause) string {
	return fmt.Sprintf("(-> [%s] %s)", strings.Join(p.dumpAll(c.Args), " "), p.dumpBody(c.Body))
}

func (p parsed) dumpDo(blk *ast.DoBlock) string {
	parts := make([]string, len(blk.Sections))
	for i, sec := range blk.Sections {
		if sec.HasClauses() {
			cs := make([]string, len(sec.Clauses))
			for j, c := range sec.Clauses {
				cs[j] = p.dumpClause(c)
			}
			parts[i] = sec.Label + ": " + strings.Join(cs, " ")
			continue
		}
		parts[i] = sec.Label + ": " + p.dumpBody(sec.Body)
	}
	return "do{" + strings.Join(parts, ", ") + "}"
}

func (p parsed) stmts() []string {
	out := make([]string, len(p.file.Body.Stmts))
	for i, s := range p.file.Body.Stmts {
		out[i] = p.dump(s.Expr)
	}
	return out
}

func expectExpr(t *testing.T, src, want string) {
	t.Helper()
	p := mustParse(t, src)
	got := p.stmts()
	if len(got) != 1 || got[0] != want {
		t.Fatalf("%q:\n got  %q\n want %q", src, got, want)
	}
}

func expectError(t *testing.T, src string, code diag.Code) {
	t.Helper()
	p := parseString(t, src)
	if p.ok {
		t.Fatalf("%q: expected parse failure", src)
	}
	items := p.bag.Items()
	if len(items) == 0 || items[0].Code != code {
		t.Fatalf("%q: expected %v, got %v", src, code, items)
	}
}

func TestCalls(t *testing.T) {
	cases := map[string]string{
		"foo(1, 2)":           "(call foo 1 2)",
		"foo()":               "(call foo)",
		"foo 1, 2":            "(call-np foo 1 2)",
		`IO.puts "x"`:         `(call-np (. IO puts) "x")`,
		`IO.puts("x")`:        `(call (. IO puts) "x")`,
		"f.(1)":               "(call (. f ) 1)",
		"Foo.Bar.baz(a: 1)":   "(call (. Foo.Bar baz) (kw a: 1))",
		"foo(1, b: 2, c: 3)":  "(call foo 1 (kw b: 2 c: 3))",
		"foo bar baz":         "(call-np foo (call-np bar baz))",
		"map.key":             "(. map key)",
		"m[:a][:b]":           "(access (access m :a) :b)",
		"foo [:a]":            "(call-np foo [:a])",
		`@doc "hi"`:           `(@ (call-np doc "hi"))`,
		"@attr":               "(@ attr)",
		"&foo/1":              "(& (/ foo 1))",
		"&(&1 + 1)":           "(& (paren (+ (& 1) 1)))",
		"-x.y":                "(- (. x y))",
		"not a == b":          "(== (not a) b)",
		"^pin = 1":            "(= (^ pin) 1)",
		"foo(1,)":             "(call foo 1)",
	}
	for src, want := range cases {
		expectExpr(t, src, want)
	}
}

func TestAnonymousCallDump(t *testing.T) {
	p := mustParse(t, "f.(1)")
	call, ok := p.b.Exprs.Call(p.file.Body.Stmts[0].Expr)
	if !ok || !call.Parens {
		t.Fatalf("expected parens call")
	}
	dot, ok := p.b.Exprs.Dot(call.Callee)
	if !ok || dot.Name != "" {
		t.Fatalf("expected anonymous dot, got %+v", dot)
	}
}

func TestPrecedence(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3":          "(+ 1 (* 2 3))",
		"1 * 2 + 3":          "(+ (* 1 2) 3)",
		"a - b - c":          "(- (- a b) c)",
		"a = b = c":          "(= a (= b c))",
		"a ++ b ++ c":        "(++ a (++ b c))",
		"a |> b |> c":        "(|> (|> a b) c)",
		"a and b or c":       "(or (and a b) c)",
		"a || b && c":        "(|| a (&& b c))",
		"x in 1..10":         "(in x (.. 1 10))",
		"a < b == c":         "(== (< a b) c)",
		"x <- list":          "(<- x list)",
		"x :: integer":       "(:: x integer)",
		"a when b and c":     "(when a (and b c))",
		`"a" <> "b" <> "c"`:  `(<> "a" (<> "b" "c"))`,
		"{:ok, x} = foo()":   "(= {:ok x} (call foo))",
		`s =~ "a"`:           `(=~ s "a")`,
	}
	for src, want := range cases {
		expectExpr(t, src, want)
	}
}

func TestContainers(t *testing.T) {
	cases := map[string]string{
		"{}":                  "{}",
		"{:a, :b}":            "{:a :b}",
		"[1, 2, 3]":           "[1 2 3]",
		"[h | t]":             "[h | t]",
		"[1, 2 | rest]":       "[1 2 | rest]",
		"[a: 1, b: 2]":        "[(kw a: 1 b: 2)]",
		"[1, a: 2]":           "[1 (kw a: 2)]",
		"<<1, 2>>":            "<<1 2>>",
		"<<x::8, rest::binary>>": "<<(:: x 8) (:: rest binary)>>",
		"%{}":                 "%{}",
		"%{a: 1}":             "%{(kw a: 1)}",
		`%{"k" => v}`:         `%{(=> "k" v)}`,
		"%{m | a: 1}":         "%{m | (kw a: 1)}",
		"%User{name: n}":      "%User{(kw name: n)}",
		"%Foo.Bar{}":          "%Foo.Bar{}",
		"%User{u | age: 2}":   "%User{u | (kw age: 2)}",
		"[\n  1,\n  2,\n]":    "[1 2]",
	}
	for src, want := range cases {
		expectExpr(t, src, want)
	}
}

func TestDoBlocks(t *testing.T) {
	cases := map[string]string{
		"if a do\n  b\nend":                    "(call-np if a do{do: b})",
		"if a do\n  b\nelse\n  c\nend":         "(call-np if a do{do: b, else: c})",
		"if a do b else c end":                 "(call-np if a do{do: b, else: c})",
		"foo bar do\n  x\nend":                 "(call-np foo bar do{do: x})",
		"foo(bar) do\nend":                     "(call foo bar do{do: })",
		"quote do\n  x\nend":                   "(call-np quote do{do: x})",
		"defmodule Foo do\n  def bar, do: 1\nend": "(call-np defmodule Foo do{do: (call-np def bar (kw do: 1))})",
		"case x do\n  {:ok, v} -> v\n  _ -> nil\nend": "(call-np case x do{do: (-> [{:ok v}] v) (-> [_] nil)})",
		"try do\n  a\nrescue\n  e -> e\nafter\n  b\nend": "(call-np try do{do: a, rescue: (-> [e] e), after: b})",
		"Enum.map(xs, fn x -> x end)":          "(call (. Enum map) xs (fn (-> [x] x)))",
	}
	for src, want := range cases {
		expectExpr(t, src, want)
	}
}

func TestFn(t *testing.T) {
	expectExpr(t, "fn x -> x * 2 end", "(fn (-> [x] (* x 2)))")
	expectExpr(t, "fn -> :ok end", "(fn (-> [] :ok))")
	expectExpr(t, "fn a, b when a > b -> a end", "(fn (-> [a (when b (> a b))] a))")
	expectExpr(t, "fn\n  0 -> :zero\n  n ->\n    a = n\n    a\nend", "(fn (-> [0] :zero) (-> [n] (= a n); a))")
}

func TestStatements(t *testing.T) {
	p := mustParse(t, "a = 1\nb = 2; c\n\nd\n|> e\nf\n-1")
	got := strings.Join(p.stmts(), " ; ")
	want := "(= a 1) ; (= b 2) ; c ; (|> d e) ; f ; (- 1)"
	if got != want {
		t.Fatalf("got %q\nwant %q", got, want)
	}
	if !p.file.Body.Stmts[3].BlankBefore {
		t.Fatalf("blank line before d was lost")
	}
	if p.file.Body.Stmts[2].BlankBefore {
		t.Fatalf("unexpected blank line before c")
	}
}

func TestComments(t *testing.T) {
	src := "# head\n\n# about a\na # trailing\n\n# about b\nb\n# tail\n"
	p := mustParse(t, src)
	stmts := p.file.Body.Stmts
	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts))
	}
	a := stmts[0]
	if len(a.Comments) != 2 || a.Comments[0].Text != "# head" || a.Comments[1].Text != "# about a" {
		t.Fatalf("comments before a: %+v", a.Comments)
	}
	if a.Comments[0].BlankBefore || !a.Comments[1].BlankBefore {
		t.Fatalf("blank lines between comments: %+v", a.Comments)
	}
	if a.LineComment == nil || a.LineComment.Text != "# trailing" {
		t.Fatalf("line comment: %+v", a.LineComment)
	}
	b := stmts[1]
	if len(b.Comments) != 1 || !b.Comments[0].BlankBefore || b.BlankBefore {
		t.Fatalf("comments before b: %+v blank=%v", b.Comments, b.BlankBefore)
	}
	if tr := p.file.Body.Trailing; len(tr) != 1 || tr[0].Text != "# tail" {
		t.Fatalf("trailing: %+v", tr)
	}
}

func TestCommentsInsideDoBlock(t *testing.T) {
	src := "foo do\n  # first\n  a # after a\n  # end of body\nelse\n  b\n  # before end\nend\n"
	p := mustParse(t, src)
	call, _ := p.b.Exprs.Call(p.file.Body.Stmts[0].Expr)
	secs := call.Do.Sections
	if len(secs) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(secs))
	}
	body := secs[0].Body
	if len(body.Stmts[0].Comments) != 1 || body.Stmts[0].LineComment == nil {
		t.Fatalf("do body comments: %+v", body.Stmts[0])
	}
	if len(body.Trailing) != 1 || body.Trailing[0].Text != "# end of body" {
		t.Fatalf("do body trailing: %+v", body.Trailing)
	}
	if tr := secs[1].Body.Trailing; len(tr) != 1 || tr[0].Text != "# before end" {
		t.Fatalf("else trailing: %+v", tr)
	}
}

func TestClauseComments(t *testing.T) {
	src := "case x do\n  # ok\n  1 -> :a\n\n  2 -> :b # two\n  # done\nend"
	p := mustParse(t, src)
	call, _ := p.b.Exprs.Call(p.file.Body.Stmts[0].Expr)
	sec := call.Do.Sections[0]
	if len(sec.Clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(sec.Clauses))
	}
	if len(sec.Clauses[0].Comments) != 1 || sec.Clauses[0].BlankBefore {
		t.Fatalf("first clause: %+v", sec.Clauses[0])
	}
	if !sec.Clauses[1].BlankBefore {
		t.Fatalf("blank line before second clause lost")
	}
	if lc := sec.Clauses[1].Body.Stmts[0].LineComment; lc == nil || lc.Text != "# two" {
		t.Fatalf("line comment in clause body: %+v", lc)
	}
	if len(sec.Trailing) != 1 {
		t.Fatalf("section trailing: %+v", sec.Trailing)
	}
}

func TestSyntaxErrors(t *testing.T) {
	cases := map[string]diag.Code{
		"foo(1, 2":              diag.SynUnclosedDelimiter,
		"[1, 2":                 diag.SynUnclosedDelimiter,
		"if a do\n  b\n":        diag.SynMissingEnd,
		"fn x -> x":             diag.SynMissingEnd,
		"[a: 1, 2]":             diag.SynKeywordNotLast,
		"foo a: 1, 2":           diag.SynKeywordNotLast,
		"[1, # c\n 2]":          diag.SynCommentInExpr,
		"1 2":                   diag.SynUnexpectedToken,
		"x -> y":                diag.SynUnexpectedToken,
		"fn x end":              diag.SynUnexpectedToken,
		"foo(1 +)":              diag.SynExpectExpression,
		")":                     diag.SynExpectExpression,
		"case x do\n a\n b -> c\nend": diag.SynUnexpectedToken,
		"%{a | b | c}":          diag.SynUnexpectedToken,
		"%foo":                  diag.SynUnexpectedToken,
	}
	for src, code := range cases {
		expectError(t, src, code)
	}
}

func TestMissingEndNote(t *testing.T) {
	p := parseString(t, "defmodule A do\n  x\n")
	items := p.bag.Items()
	if len(items) != 1 || len(items[0].Notes) != 1 {
		t.Fatalf("expected one diagnostic with a note, got %+v", items)
	}
	if items[0].Notes[0].Span.Start != uint32(len("defmodule A ")) {
		t.Fatalf("note should point at do, got %v", items[0].Notes[0].Span)
	}
}

func TestTooDeep(t *testing.T) {
	src := strings.Repeat("(", 20_000) + "x" + strings.Repeat(")", 20_000)
	expectError(t, src, diag.SynTooDeep)
}

func TestLexErrorStopsParse(t *testing.T) {
	p := parseString(t, "a = $")
	if p.ok {
		t.Fatal("expected failure")
	}
	if items := p.bag.Items(); len(items) == 0 || items[0].Code != diag.LexUnknownChar {
		t.Fatalf("expected lexer diagnostic, got %v", items)
	}
}
