// Package bracket recognises the bracket-like punctuation literals the
// space relaxer pads: `{ ( [ <<` and `} ) ] >>`.
//
// Classification is set membership on exact strings. Opening and closing
// literals are never paired with each other.
package bracket

import "relaxfmt/internal/doc"

var (
	opening = map[string]struct{}{
		"{":  {},
		"(":  {},
		"[":  {},
		"<<": {},
	}
	closing = map[string]struct{}{
		"}":  {},
		")":  {},
		"]":  {},
		">>": {},
	}
)

// IsOpen reports whether s is exactly one of `{`, `(`, `[`, `<<`.
func IsOpen(s string) bool {
	_, ok := opening[s]
	return ok
}

// IsClose reports whether s is exactly one of `}`, `)`, `]`, `>>`.
func IsClose(s string) bool {
	_, ok := closing[s]
	return ok
}

// IsOpenLeaf reports whether d is a Text leaf holding an opening literal.
func IsOpenLeaf(d doc.Document) bool {
	t, ok := d.(doc.Text)
	return ok && IsOpen(t.Content)
}

// IsCloseLeaf reports whether d is a Text leaf holding a closing literal.
func IsCloseLeaf(d doc.Document) bool {
	t, ok := d.(doc.Text)
	return ok && IsClose(t.Content)
}
