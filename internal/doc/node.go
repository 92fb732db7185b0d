package doc

import "fmt"

// Document is a node of the document tree. The set of variants is closed.
type Document interface {
	isDocument()
}

// BreakMode selects how a Break reacts to its enclosing group.
type BreakMode uint8

const (
	// Strict breaks follow the mode of the enclosing group.
	Strict BreakMode = iota
	// Flex breaks only turn into newlines when the next chunk does not fit.
	Flex
)

func (m BreakMode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Flex:
		return "flex"
	default:
		return fmt.Sprintf("BreakMode(%d)", uint8(m))
	}
}

// NestMode controls when a Nest applies its indentation.
type NestMode uint8

const (
	// NestAlways indents breaks inside the nest regardless of group mode.
	NestAlways NestMode = iota
	// NestBreak indents only when the nest is laid out in break mode.
	NestBreak
)

func (m NestMode) String() string {
	switch m {
	case NestAlways:
		return "always"
	case NestBreak:
		return "break"
	default:
		return fmt.Sprintf("NestMode(%d)", uint8(m))
	}
}

// GroupMode is the layout option carried by a Group.
type GroupMode uint8

const (
	// GroupSelf lets the renderer decide flat or broken for this group.
	GroupSelf GroupMode = iota
	// GroupInherit reuses the decision of the enclosing group.
	GroupInherit
)

func (m GroupMode) String() string {
	switch m {
	case GroupSelf:
		return "self"
	case GroupInherit:
		return "inherit"
	default:
		return fmt.Sprintf("GroupMode(%d)", uint8(m))
	}
}

// IndentKind distinguishes the three flavours of Nest indentation.
type IndentKind uint8

const (
	// IndentRelative adds N columns to the current indentation.
	IndentRelative IndentKind = iota
	// IndentAtCursor sets the indentation to the current column.
	IndentAtCursor
	// IndentToZero drops the indentation to column zero.
	IndentToZero
)

// Indent describes how a Nest changes indentation.
type Indent struct {
	Kind IndentKind
	N    int
}

// IndentBy returns a relative indentation of n columns.
func IndentBy(n int) Indent { return Indent{Kind: IndentRelative, N: n} }

var (
	// IndentCursor aligns nested lines with the column where the nest starts.
	IndentCursor = Indent{Kind: IndentAtCursor}
	// IndentReset renders nested lines from column zero.
	IndentReset = Indent{Kind: IndentToZero}
)

func (i Indent) String() string {
	switch i.Kind {
	case IndentAtCursor:
		return "cursor"
	case IndentToZero:
		return "reset"
	default:
		return fmt.Sprintf("%d", i.N)
	}
}

// Text is literal text rendered as-is.
type Text struct {
	Content string
}

// Cons concatenates two documents.
type Cons struct {
	Left  Document
	Right Document
}

// Break renders as Sep when laid out flat, or as a newline plus the current
// indentation when broken.
type Break struct {
	Sep  string
	Mode BreakMode
}

// Nest changes the indentation applied to line breaks inside Inner.
type Nest struct {
	Inner  Document
	Indent Indent
	Mode   NestMode
}

// Group is a unit the renderer lays out either entirely flat or broken.
type Group struct {
	Inner Document
	Mode  GroupMode
}

// Force renders Inner broken and makes every enclosing group unfit.
type Force struct {
	Inner Document
}

// Tagged is an extension node. The relaxer recurses into it structurally and
// the renderer interprets only the tags it knows (see TagColor).
type Tagged struct {
	Tag  string
	Args []Document
}

// Marker is a non-composite atom.
type Marker uint8

const (
	// Nil renders nothing.
	Nil Marker = iota
	// Line is an unconditional newline.
	Line
)

func (m Marker) String() string {
	switch m {
	case Nil:
		return "nil"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
}

func (Text) isDocument()   {}
func (Cons) isDocument()   {}
func (Break) isDocument()  {}
func (Nest) isDocument()   {}
func (Group) isDocument()  {}
func (Force) isDocument()  {}
func (Tagged) isDocument() {}
func (Marker) isDocument() {}
