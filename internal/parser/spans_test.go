package parser_test

import (
	"testing"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/parser"
	"relaxfmt/internal/source"
	"relaxfmt/internal/testkit"
)

func TestSpanInvariants(t *testing.T) {
	sources := []string{
		"",
		"foo(1, 2)\nbar\n\n[1, 2]\n",
		"# leading\nx = 1 # trailing\n",
		"defmodule A do\n  def f(x), do: x\nend\n",
		"case x do\n  {:ok, v} -> v\n  _ -> nil\nend\n",
	}
	for _, src := range sources {
		fs := source.NewFileSet()
		sf := fs.Get(fs.AddVirtual("spans.ex", []byte(src)))
		bag := diag.NewBag(0)
		b := ast.NewBuilder(ast.Hints{})
		res := parser.ParseFile(sf, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
		if !res.Ok || bag.Len() > 0 {
			t.Fatalf("parse %q failed: %v", src, bag.Items())
		}
		if err := testkit.CheckSpanInvariants(b, res.File, sf); err != nil {
			t.Errorf("%q: %v", src, err)
		}
	}
}
