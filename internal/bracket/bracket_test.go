package bracket

import (
	"testing"

	"relaxfmt/internal/doc"
)

func TestIsOpen(t *testing.T) {
	cases := map[string]bool{
		"{":  true,
		"(":  true,
		"[":  true,
		"<<": true,
		"}":  false,
		")":  false,
		">>": false,
		"%{": false,
		"<":  false,
		"((": false,
		" (": false,
		"":   false,
	}
	for in, want := range cases {
		if got := IsOpen(in); got != want {
			t.Errorf("IsOpen(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsClose(t *testing.T) {
	cases := map[string]bool{
		"}":  true,
		")":  true,
		"]":  true,
		">>": true,
		"{":  false,
		"<<": false,
		">":  false,
		") ": false,
		"":   false,
	}
	for in, want := range cases {
		if got := IsClose(in); got != want {
			t.Errorf("IsClose(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLeafPredicates(t *testing.T) {
	if !IsOpenLeaf(doc.Text{Content: "<<"}) {
		t.Fatal("<< text should be an open leaf")
	}
	if !IsCloseLeaf(doc.Text{Content: "]"}) {
		t.Fatal("] text should be a close leaf")
	}
	notLeaves := []doc.Document{
		doc.Break{Sep: "(", Mode: doc.Strict},
		doc.Group{Inner: doc.Text{Content: "("}},
		doc.Cons{Left: doc.Text{Content: "("}, Right: doc.Nil},
		doc.Nil,
		nil,
	}
	for _, d := range notLeaves {
		if IsOpenLeaf(d) || IsCloseLeaf(d) {
			t.Errorf("%#v must not classify as a bracket leaf", d)
		}
	}
}
