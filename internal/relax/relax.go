// Package relax pads bracket-like punctuation in a document tree with
// breakable spaces, so `foo(1, 2)` renders as `foo( 1, 2 )`.
//
// Transform is pure: it builds a new tree and leaves its input untouched.
// Applying it twice is not idempotent; the second pass wraps every close
// bracket in another flex space. Callers run it exactly once per document.
package relax

import (
	"relaxfmt/internal/bracket"
	"relaxfmt/internal/doc"
)

var (
	strictSpace = doc.Break{Sep: " ", Mode: doc.Strict}
	flexSpace   = doc.Break{Sep: " ", Mode: doc.Flex}
)

// Transform returns d with spaces inserted after every opening bracket leaf
// and before every closing bracket leaf it can reach structurally.
//
// Shapes are tested in a fixed order; the first match wins:
//
//  1. Cons(Break("", Strict), close)  -> Cons(Break(" ", Strict), close)
//  2. Cons(left, close)               -> Cons(T(left), Cons(Break(" ", Flex), close))
//  3. (tag, open, rest)               -> (tag, open, Cons(Break(" ", Flex), T(rest)))
//  4. Cons(a, b)                      -> Cons(T(a), T(b))
//  5. Nest, Group, Force              -> same wrapper around T(inner)
//  6. Tagged with two children        -> children transformed
//  7. anything else                   -> unchanged
//
// Case 3 covers both Cons and two-child Tagged nodes. Reordering 2 and 3
// turns `Cons("(", ")")` into a double space.
func Transform(d doc.Document) doc.Document {
	switch n := d.(type) {
	case doc.Cons:
		return transformCons(n)
	case doc.Nest:
		return doc.Nest{Inner: Transform(n.Inner), Indent: n.Indent, Mode: n.Mode}
	case doc.Group:
		return doc.Group{Inner: Transform(n.Inner), Mode: n.Mode}
	case doc.Force:
		return doc.Force{Inner: Transform(n.Inner)}
	case doc.Tagged:
		return transformTagged(n)
	default:
		// Text, Break, Marker and nil.
		return d
	}
}

func transformCons(n doc.Cons) doc.Document {
	if bracket.IsCloseLeaf(n.Right) {
		if br, ok := n.Left.(doc.Break); ok && br.Sep == "" && br.Mode == doc.Strict {
			return doc.Cons{Left: strictSpace, Right: n.Right}
		}
		return doc.Cons{
			Left:  Transform(n.Left),
			Right: doc.Cons{Left: flexSpace, Right: n.Right},
		}
	}
	if bracket.IsOpenLeaf(n.Left) {
		return doc.Cons{
			Left:  n.Left,
			Right: doc.Cons{Left: flexSpace, Right: Transform(n.Right)},
		}
	}
	return doc.Cons{Left: Transform(n.Left), Right: Transform(n.Right)}
}

func transformTagged(n doc.Tagged) doc.Document {
	if len(n.Args) != 2 {
		return n
	}
	open, rest := n.Args[0], n.Args[1]
	if bracket.IsOpenLeaf(open) {
		return doc.Tagged{
			Tag:  n.Tag,
			Args: []doc.Document{open, doc.Cons{Left: flexSpace, Right: Transform(rest)}},
		}
	}
	return doc.Tagged{
		Tag:  n.Tag,
		Args: []doc.Document{Transform(open), Transform(rest)},
	}
}
