package driver

import (
	"fmt"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

// SyntaxError reports a source that could not be parsed. Bag holds the
// diagnostics and FileSet resolves their spans.
type SyntaxError struct {
	Path    string
	FileSet *source.FileSet
	Bag     *diag.Bag
}

func (e *SyntaxError) Error() string {
	items := e.Bag.Items()
	if len(items) == 0 {
		return fmt.Sprintf("%s: syntax error", e.Path)
	}
	first := items[0]
	start, _ := e.FileSet.Resolve(first.Primary)
	msg := fmt.Sprintf("%s:%d:%d: %s", e.Path, start.Line, start.Col, first.Message)
	if len(items) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(items)-1)
	}
	return msg
}
