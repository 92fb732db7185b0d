// Package testkit holds checks shared by parser and formatter tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed file:
// the file span stays inside the content, every top-level statement has a
// non-empty span inside the file span, statements appear in source order
// and each statement covers its expression.
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points to different file id: got=%d want=%d", f.Span.File, sf.ID)
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.Start != 0 || f.Span.End > lenContent {
		return fmt.Errorf("file span %v outside content of %d bytes", f.Span, lenContent)
	}

	var prevEnd uint32
	for i, st := range f.Body.Stmts {
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("stmt %d: empty span %v", i, sp)
		}
		if !contains(f.Span, sp) {
			return fmt.Errorf("stmt %d: span %v outside file span %v", i, sp, f.Span)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("stmt %d: span %v overlaps previous statement ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		expr := b.Exprs.Get(st.Expr)
		if expr == nil {
			return fmt.Errorf("stmt %d: nil expr for id=%d", i, st.Expr)
		}
		if !contains(sp, expr.Span) {
			return fmt.Errorf("stmt %d: expr span %v escapes statement span %v", i, expr.Span, sp)
		}
	}
	return nil
}

func contains(outer, inner source.Span) bool {
	return inner.File == outer.File && inner.Start >= outer.Start && inner.End <= outer.End
}
