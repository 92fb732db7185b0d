package driver

import (
	"errors"
	"fmt"
	"slices"

	"relaxfmt/internal/ast"
	"relaxfmt/internal/diag"
	"relaxfmt/internal/parser"
	"relaxfmt/internal/source"
)

// ErrOutlineMismatch is wrapped by verification failures.
var ErrOutlineMismatch = errors.New("formatted output does not match the input outline")

// outline is a coarse structural fingerprint of a file: the kind of every
// top-level expression and the number of comments. Layout never changes it.
type outline struct {
	kinds    []ast.ExprKind
	comments int
}

// verifyOutline reparses formatted and checks that its outline matches the
// original file.
func verifyOutline(fs *source.FileSet, file *source.File, formatted []byte) error {
	before, ok := outlineOf(file)
	if !ok {
		return fmt.Errorf("%s: %w: input does not parse", file.Path, ErrOutlineMismatch)
	}
	id := fs.AddVirtual(file.Path, formatted)
	after, ok := outlineOf(fs.Get(id))
	if !ok {
		return fmt.Errorf("%s: %w: output does not parse", file.Path, ErrOutlineMismatch)
	}
	if !slices.Equal(before.kinds, after.kinds) {
		return fmt.Errorf("%s: %w: top-level expressions differ", file.Path, ErrOutlineMismatch)
	}
	if before.comments != after.comments {
		return fmt.Errorf("%s: %w: %d comments became %d", file.Path, ErrOutlineMismatch, before.comments, after.comments)
	}
	return nil
}

func outlineOf(file *source.File) (outline, bool) {
	bag := diag.NewBag(1)
	b := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(file, b, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if !res.Ok || bag.HasErrors() {
		return outline{}, false
	}
	body := b.Files.Get(res.File).Body
	var out outline
	out.kinds = make([]ast.ExprKind, 0, len(body.Stmts))
	for _, st := range body.Stmts {
		out.kinds = append(out.kinds, b.Exprs.Get(st.Expr).Kind)
	}
	out.comments = countComments(b, body)
	return out, true
}

func countComments(b *ast.Builder, body ast.Body) int {
	n := len(body.Trailing)
	for _, st := range body.Stmts {
		n += len(st.Comments)
		if st.LineComment != nil {
			n++
		}
	}
	return n
}
