package doc

// Equal reports whether a and b are structurally equal.
func Equal(a, b Document) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Break:
		y, ok := b.(Break)
		return ok && x == y
	case Marker:
		y, ok := b.(Marker)
		return ok && x == y
	case Cons:
		y, ok := b.(Cons)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case Nest:
		y, ok := b.(Nest)
		return ok && x.Indent == y.Indent && x.Mode == y.Mode && Equal(x.Inner, y.Inner)
	case Group:
		y, ok := b.(Group)
		return ok && x.Mode == y.Mode && Equal(x.Inner, y.Inner)
	case Force:
		y, ok := b.(Force)
		return ok && Equal(x.Inner, y.Inner)
	case Tagged:
		y, ok := b.(Tagged)
		if !ok || x.Tag != y.Tag || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !Equal(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Depth returns the nesting depth of d; leaves have depth 1.
func Depth(d Document) int {
	switch x := d.(type) {
	case Cons:
		return 1 + max(Depth(x.Left), Depth(x.Right))
	case Nest:
		return 1 + Depth(x.Inner)
	case Group:
		return 1 + Depth(x.Inner)
	case Force:
		return 1 + Depth(x.Inner)
	case Tagged:
		deepest := 0
		for _, arg := range x.Args {
			deepest = max(deepest, Depth(arg))
		}
		return 1 + deepest
	case nil:
		return 0
	default:
		return 1
	}
}
