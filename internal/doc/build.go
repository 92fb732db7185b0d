package doc

// TagColor marks a Tagged node whose first argument is rendered in the color
// named by the second argument (a Text). Renderers without color support
// render the first argument only.
const TagColor = "color"

// Str wraps a string into a Text leaf.
func Str(s string) Document { return Text{Content: s} }

// Concat joins docs left to right. Nil leaves are dropped; an empty input
// yields Nil.
func Concat(docs ...Document) Document {
	var out Document
	for i := len(docs) - 1; i >= 0; i-- {
		d := docs[i]
		if d == nil || d == Nil {
			continue
		}
		if out == nil {
			out = d
			continue
		}
		out = Cons{Left: d, Right: out}
	}
	if out == nil {
		return Nil
	}
	return out
}

// Glue concatenates a, sep and b.
func Glue(a Document, sep string, b Document) Document {
	return Concat(a, Str(sep), b)
}

// Space concatenates a and b with a single space between them.
func Space(a, b Document) Document {
	return Glue(a, " ", b)
}

// Join places sep between consecutive docs.
func Join(docs []Document, sep Document) Document {
	if len(docs) == 0 {
		return Nil
	}
	parts := make([]Document, 0, len(docs)*2-1)
	for i, d := range docs {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, d)
	}
	return Concat(parts...)
}

// StrictBreak returns a strict break rendering as sep when flat.
func StrictBreak(sep string) Document { return Break{Sep: sep, Mode: Strict} }

// FlexBreak returns a flex break rendering as sep when it fits.
func FlexBreak(sep string) Document { return Break{Sep: sep, Mode: Flex} }

// NestBy indents breaks in d by n columns.
func NestBy(d Document, n int) Document {
	return Nest{Inner: d, Indent: IndentBy(n), Mode: NestAlways}
}

// NestAtCursor aligns breaks in d with the column where d starts.
func NestAtCursor(d Document) Document {
	return Nest{Inner: d, Indent: IndentCursor, Mode: NestAlways}
}

// GroupOf wraps d into a self-deciding group.
func GroupOf(d Document) Document { return Group{Inner: d, Mode: GroupSelf} }

// ForceOf marks d as always broken.
func ForceOf(d Document) Document { return Force{Inner: d} }

// Color tags d with a color name understood by the renderer.
func Color(d Document, name string) Document {
	return Tagged{Tag: TagColor, Args: []Document{d, Str(name)}}
}
