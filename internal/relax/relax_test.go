package relax

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"relaxfmt/internal/doc"
)

func text(s string) doc.Text { return doc.Text{Content: s} }

func cons(a, b doc.Document) doc.Cons { return doc.Cons{Left: a, Right: b} }

var (
	emptyStrict = doc.Break{Sep: "", Mode: doc.Strict}
	spaceStrict = doc.Break{Sep: " ", Mode: doc.Strict}
	spaceFlex   = doc.Break{Sep: " ", Mode: doc.Flex}
)

func assertDoc(t *testing.T, got, want doc.Document) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLeavesUnchanged(t *testing.T) {
	leaves := []doc.Document{
		text("foo"),
		text("("),
		text(")"),
		emptyStrict,
		spaceFlex,
		doc.Nil,
		doc.Line,
		nil,
	}
	for _, leaf := range leaves {
		assertDoc(t, Transform(leaf), leaf)
	}
}

func TestStrictEmptyBreakBeforeClose(t *testing.T) {
	for _, closer := range []string{")", "}", "]", ">>"} {
		in := cons(emptyStrict, text(closer))
		assertDoc(t, Transform(in), cons(spaceStrict, text(closer)))
	}
}

func TestSpaceBeforeClose(t *testing.T) {
	left := cons(text("a"), text(","))
	in := cons(left, text("]"))
	want := cons(left, cons(spaceFlex, text("]")))
	assertDoc(t, Transform(in), want)
}

func TestNonEmptyOrFlexBreakBeforeCloseGetsFlexSpace(t *testing.T) {
	cases := []doc.Break{
		{Sep: " ", Mode: doc.Strict},
		{Sep: "", Mode: doc.Flex},
	}
	for _, br := range cases {
		in := cons(br, text(")"))
		want := cons(br, cons(spaceFlex, text(")")))
		assertDoc(t, Transform(in), want)
	}
}

func TestSpaceBeforeCloseRecursesIntoLeft(t *testing.T) {
	inner := cons(text("("), text("x"))
	in := cons(inner, text(")"))
	want := cons(cons(text("("), cons(spaceFlex, text("x"))), cons(spaceFlex, text(")")))
	assertDoc(t, Transform(in), want)
}

func TestSpaceAfterOpen(t *testing.T) {
	for _, opener := range []string{"(", "{", "[", "<<"} {
		rest := cons(text("1"), text(","))
		in := cons(text(opener), rest)
		want := cons(text(opener), cons(spaceFlex, rest))
		assertDoc(t, Transform(in), want)
	}
}

func TestSpaceAfterOpenOnTaggedNode(t *testing.T) {
	in := doc.Tagged{Tag: "fits", Args: []doc.Document{text("<<"), cons(text("x"), text(">>"))}}
	want := doc.Tagged{Tag: "fits", Args: []doc.Document{
		text("<<"),
		cons(spaceFlex, cons(text("x"), cons(spaceFlex, text(">>")))),
	}}
	assertDoc(t, Transform(in), want)
}

func TestCloseCaseWinsOverOpenCase(t *testing.T) {
	// `()` must collapse to a single padding break.
	in := cons(text("("), text(")"))
	want := cons(text("("), cons(spaceFlex, text(")")))
	assertDoc(t, Transform(in), want)
}

func TestStrictCloseCaseWinsOverOpenCase(t *testing.T) {
	in := cons(emptyStrict, text("}"))
	got := Transform(in)
	assertDoc(t, got, cons(spaceStrict, text("}")))
}

func TestWrappersPreserveOptions(t *testing.T) {
	payload := cons(text("["), text("x"))
	relaxed := cons(text("["), cons(spaceFlex, text("x")))

	cases := []struct {
		name string
		in   doc.Document
		want doc.Document
	}{
		{
			name: "nest",
			in:   doc.Nest{Inner: payload, Indent: doc.IndentCursor, Mode: doc.NestBreak},
			want: doc.Nest{Inner: relaxed, Indent: doc.IndentCursor, Mode: doc.NestBreak},
		},
		{
			name: "group",
			in:   doc.Group{Inner: payload, Mode: doc.GroupInherit},
			want: doc.Group{Inner: relaxed, Mode: doc.GroupInherit},
		},
		{
			name: "force",
			in:   doc.Force{Inner: payload},
			want: doc.Force{Inner: relaxed},
		},
		{
			name: "tagged pair",
			in:   doc.Tagged{Tag: "color", Args: []doc.Document{payload, text("cyan")}},
			want: doc.Tagged{Tag: "color", Args: []doc.Document{relaxed, text("cyan")}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assertDoc(t, Transform(tc.in), tc.want)
		})
	}
}

func TestOtherTaggedArityPassesThrough(t *testing.T) {
	payload := cons(text("("), text("x"))
	cases := []doc.Tagged{
		{Tag: "collapse"},
		{Tag: "single", Args: []doc.Document{payload}},
		{Tag: "triple", Args: []doc.Document{payload, payload, payload}},
	}
	for _, in := range cases {
		assertDoc(t, Transform(in), in)
	}
}

func TestGenericConsRecursesBothSides(t *testing.T) {
	in := cons(cons(text("("), text("a")), cons(text("["), text("b")))
	want := cons(
		cons(text("("), cons(spaceFlex, text("a"))),
		cons(text("["), cons(spaceFlex, text("b"))),
	)
	assertDoc(t, Transform(in), want)
}

func TestInputIsNotMutated(t *testing.T) {
	args := []doc.Document{text("{"), cons(text("a"), text("}"))}
	in := doc.Tagged{Tag: "t", Args: args}
	_ = Transform(in)
	assertDoc(t, in.Args[0], text("{"))
	assertDoc(t, in.Args[1], cons(text("a"), text("}")))
}

func TestDeterministic(t *testing.T) {
	in := doc.GroupOf(doc.Concat(
		doc.NestBy(doc.Concat(text("("), emptyStrict, text("1")), 2),
		emptyStrict,
		text(")"),
	))
	first := Transform(in)
	second := Transform(in)
	if !doc.Equal(first, second) {
		t.Fatalf("Transform is not deterministic:\n%s", cmp.Diff(first, second))
	}
}

func TestDeepTree(t *testing.T) {
	var d doc.Document = text("x")
	for range 100_000 {
		d = doc.Cons{Left: text("("), Right: doc.Cons{Left: d, Right: text(")")}}
	}
	out := Transform(d)
	if doc.Depth(out) <= doc.Depth(d) {
		t.Fatalf("expected padding to deepen the tree")
	}
}

// A second pass pads the already padded close bracket again.
func TestSecondPassIsNotIdempotent(t *testing.T) {
	in := cons(text("a"), text(")"))
	once := Transform(in)
	twice := Transform(once)
	want := cons(text("a"), cons(spaceFlex, cons(spaceFlex, text(")"))))
	assertDoc(t, twice, want)
}
