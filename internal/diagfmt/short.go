package diagfmt

import (
	"fmt"
	"io"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

// Short writes one line per diagnostic: `error SYN2001 path:1:1 message`.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, includeNotes bool) error {
	out := diag.FormatGoldenDiagnostics(bag.Items(), fs, includeNotes)
	if out == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
