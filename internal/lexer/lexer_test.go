package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/lexer"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ex", []byte(input))
	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%v(%q)", tok.Kind, tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := lx.All()
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %v\ndiags: %v",
			len(expected), len(tokens), input, tokensToString(tokens), bag.Items())
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)", i, expected[i], tok.Kind, tok.Text)
		}
	}
	return tokens
}

func expectSingleToken(t *testing.T, input string, kind token.Kind, text string) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind || tok.Text != text {
		t.Errorf("%q: got %v(%q), want %v(%q); diags: %v", input, tok.Kind, tok.Text, kind, text, bag.Items())
	}
	if next := lx.Next(); next.Kind != token.EOF {
		t.Errorf("%q: trailing token %v(%q)", input, next.Kind, next.Text)
	}
}

func TestIdentifiersAndAliases(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"foo", token.Ident},
		{"_bar", token.Ident},
		{"valid?", token.Ident},
		{"save!", token.Ident},
		{"snake_case_1", token.Ident},
		{"привет", token.Ident},
		{"Enum", token.Alias},
		{"MyApp", token.Alias},
		{"end", token.KwEnd},
		{"do", token.KwDo},
		{"nil", token.KwNil},
		{"when", token.KwWhen},
	}
	for _, tc := range cases {
		expectSingleToken(t, tc.input, tc.kind, tc.input)
	}
}

func TestKeywordKeys(t *testing.T) {
	toks := expectTokens(t, "[do: 1, else: x]",
		token.LBracket, token.KeyIdent, token.IntLit, token.Comma, token.KeyIdent, token.Ident, token.RBracket)
	if toks[1].Text != "do:" {
		t.Fatalf("key text = %q", toks[1].Text)
	}
	// `a::b` is not a key and `cond :x` has a space before the atom.
	expectTokens(t, "f :x", token.Ident, token.AtomLit)
}

func TestBangEqAfterIdent(t *testing.T) {
	expectTokens(t, "a!=b", token.Ident, token.BangEq, token.Ident)
	expectTokens(t, "a != b", token.Ident, token.BangEq, token.Ident)
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"1_000", token.IntLit},
		{"0x1F", token.IntLit},
		{"0b1010", token.IntLit},
		{"0o777", token.IntLit},
		{"1.5", token.FloatLit},
		{"1.0e-3", token.FloatLit},
		{"2.5E10", token.FloatLit},
	}
	for _, tc := range cases {
		expectSingleToken(t, tc.input, tc.kind, tc.input)
	}
}

func TestRangeIsNotFloat(t *testing.T) {
	expectTokens(t, "1..10", token.IntLit, token.DotDot, token.IntLit)
	expectTokens(t, "x.y", token.Ident, token.Dot, token.Ident)
}

func TestBadNumbers(t *testing.T) {
	for _, input := range []string{"1_", "0x", "1.0e"} {
		lx, bag := makeTestLexer(input)
		tok := lx.Next()
		if tok.Kind != token.Invalid {
			t.Errorf("%q: expected invalid, got %v", input, tok.Kind)
		}
		if !bag.HasErrors() || bag.Items()[0].Code != diag.LexBadNumber {
			t.Errorf("%q: expected LexBadNumber, got %v", input, bag.Items())
		}
	}
}

func TestStrings(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLit, `"hello"`)
	expectSingleToken(t, `"a \" b"`, token.StringLit, `"a \" b"`)
	expectSingleToken(t, "\"multi\nline\"", token.StringLit, "\"multi\nline\"")
	expectSingleToken(t, "\"\"\"\ndoc \"quoted\"\n\"\"\"", token.StringLit, "\"\"\"\ndoc \"quoted\"\n\"\"\"")
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"open`)
	if tok := lx.Next(); tok.Kind != token.Invalid {
		t.Fatalf("expected invalid, got %v", tok.Kind)
	}
	if bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestAtomsAndChars(t *testing.T) {
	expectSingleToken(t, ":ok", token.AtomLit, ":ok")
	expectSingleToken(t, ":Elixir", token.AtomLit, ":Elixir")
	expectSingleToken(t, ":valid?", token.AtomLit, ":valid?")
	expectSingleToken(t, `:"with space"`, token.AtomLit, `:"with space"`)
	expectSingleToken(t, "?a", token.CharLit, "?a")
	expectSingleToken(t, `?\n`, token.CharLit, `?\n`)
}

func TestBracketsAndOperators(t *testing.T) {
	expectTokens(t, "<<1, 2>>",
		token.LtLt, token.IntLit, token.Comma, token.IntLit, token.GtGt)
	expectTokens(t, "%{a => 1}",
		token.Percent, token.LBrace, token.Ident, token.FatArrow, token.IntLit, token.RBrace)
	expectTokens(t, "a |> b <> c ++ d -- e",
		token.Ident, token.PipeGt, token.Ident, token.Concat, token.Ident,
		token.PlusPlus, token.Ident, token.MinusMinus, token.Ident)
	expectTokens(t, "a === b !== c",
		token.Ident, token.EqEq, token.Ident, token.BangEq, token.Ident)
	expectTokens(t, "[h | t]",
		token.LBracket, token.Ident, token.Pipe, token.Ident, token.RBracket)
	expectTokens(t, "@doc", token.At, token.Ident)
	expectTokens(t, "{:ok, a} <- f(^b)",
		token.LBrace, token.AtomLit, token.Comma, token.Ident, token.RBrace, token.LeftArrow,
		token.Ident, token.LParen, token.Caret, token.Ident, token.RParen)
	expectTokens(t, `a \\ 1`, token.Ident, token.BackSlash2, token.IntLit)
	expectTokens(t, "x :: t", token.Ident, token.ColonColon, token.Ident)
	expectTokens(t, "s =~ r", token.Ident, token.MatchOp, token.Ident)
	expectTokens(t, "<<<<1>>>>",
		token.LtLt, token.LtLt, token.IntLit, token.GtGt, token.GtGt)
	expectTokens(t, "a<=b>=c->d", token.Ident, token.LtEq, token.Ident, token.GtEq,
		token.Ident, token.Arrow, token.Ident)
	expectTokens(t, "ok!=nil", token.Ident, token.BangEq, token.Ident)
	expectTokens(t, "1..2", token.IntLit, token.DotDot, token.IntLit)
}

func TestHeredocWithEscapedQuotes(t *testing.T) {
	src := "\"\"\"\nsay \\\"\"\" twice\n\"\"\""
	expectSingleToken(t, src, token.StringLit, src)
}

func TestTriviaAttachment(t *testing.T) {
	lx, _ := makeTestLexer("a # note\n\n  b")
	a := lx.Next()
	if len(a.Leading) != 0 {
		t.Fatalf("first token has trivia: %+v", a.Leading)
	}
	b := lx.Next()
	kinds := make([]token.TriviaKind, 0, len(b.Leading))
	for _, tr := range b.Leading {
		kinds = append(kinds, tr.Kind)
	}
	want := []token.TriviaKind{token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline, token.TriviaSpace}
	if fmt.Sprint(kinds) != fmt.Sprint(want) {
		t.Fatalf("trivia kinds = %v, want %v", kinds, want)
	}
	if b.Leading[2].Text != "\n\n" {
		t.Fatalf("newlines must coalesce, got %q", b.Leading[2].Text)
	}
	if !b.NewlineBefore() {
		t.Fatal("expected newline before b")
	}
}

func TestTrailingCommentAttachesToEOF(t *testing.T) {
	lx, _ := makeTestLexer("x\n# last\n")
	lx.Next()
	eof := lx.Next()
	if eof.Kind != token.EOF {
		t.Fatalf("expected EOF, got %v", eof.Kind)
	}
	if len(eof.Comments()) != 1 || eof.Comments()[0].Text != "# last" {
		t.Fatalf("EOF comments = %+v", eof.Comments())
	}
	if again := lx.Next(); again.Kind != token.EOF || len(again.Leading) != 0 {
		t.Fatalf("EOF must repeat without trivia, got %+v", again)
	}
}

func TestLineContinuationIsSpace(t *testing.T) {
	lx, _ := makeTestLexer("a \\\n b")
	lx.Next()
	if b := lx.Next(); b.NewlineBefore() {
		t.Fatal("escaped newline must not count as a line break")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("Peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("Next after Peek = %q", n.Text)
	}
}

func TestUnknownCharacter(t *testing.T) {
	lx, bag := makeTestLexer("a $ b")
	toks := lx.All()
	if toks[1].Kind != token.Invalid {
		t.Fatalf("expected invalid token, got %v", tokensToString(toks))
	}
	if bag.Items()[0].Code != diag.LexUnknownChar {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestLoneColonIsBadAtom(t *testing.T) {
	lx, bag := makeTestLexer(": x")
	lx.All()
	if bag.Len() == 0 || bag.Items()[0].Code != diag.LexBadAtom {
		t.Fatalf("got %v", bag.Items())
	}
}
