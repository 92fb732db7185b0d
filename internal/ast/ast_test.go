package ast

import (
	"testing"

	"relaxfmt/internal/source"
)

func TestArenaIsOneBased(t *testing.T) {
	a := NewArena[int](0)
	if a.Get(0) != nil || a.Get(1) != nil {
		t.Fatal("empty arena must return nil")
	}
	id := a.Allocate(7)
	if id != 1 || *a.Get(id) != 7 || a.Len() != 1 {
		t.Fatalf("Allocate = %d, Get = %v", id, a.Get(id))
	}
}

func TestPayloadAccessorsCheckKind(t *testing.T) {
	b := NewBuilder(Hints{})
	sp := source.Span{Start: 0, End: 3}
	foo := b.Exprs.NewIdent(sp, "foo")
	call := b.Exprs.NewCall(sp, ExprCallData{Callee: foo, Parens: true})
	list := b.Exprs.NewContainer(ExprList, sp, []ExprID{foo}, NoExprID)

	if _, ok := b.Exprs.Literal(foo); ok {
		t.Fatal("ident must not read as literal")
	}
	if c, ok := b.Exprs.Container(list); !ok || len(c.Elems) != 1 {
		t.Fatalf("Container(list) = %+v, %v", c, ok)
	}
	if got := b.Exprs.CallName(call); got != "foo" {
		t.Fatalf("CallName = %q", got)
	}
	dot := b.Exprs.NewDot(sp, b.Exprs.NewAlias(sp, []string{"Enum"}), "map")
	remote := b.Exprs.NewCall(sp, ExprCallData{Callee: dot})
	if got := b.Exprs.CallName(remote); got != "" {
		t.Fatalf("remote CallName = %q", got)
	}
	if b.Exprs.Get(NoExprID) != nil {
		t.Fatal("NoExprID must resolve to nil")
	}
}
