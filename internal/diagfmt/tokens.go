package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"relaxfmt/internal/bracket"
	"relaxfmt/internal/source"
	"relaxfmt/internal/token"
)

// TokenOutput is one token of `relaxfmt tokens`. Bracket is "open" or
// "close" for the delimiters the relaxer pads.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Bracket string      `json:"bracket,omitempty"`
	Leading []string    `json:"leading,omitempty"`
}

func tokenViews(tokens []token.Token) []TokenOutput {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		v := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		switch {
		case bracket.IsOpen(tok.Text):
			v.Bracket = "open"
		case bracket.IsClose(tok.Text):
			v.Bracket = "close"
		}
		for _, tr := range tok.Leading {
			v.Leading = append(v.Leading, tr.Kind.String())
		}
		out = append(out, v)
		if tok.Kind == token.EOF {
			break
		}
	}
	return out
}

// FormatTokensPretty выводит по строке на токен: kind, текст, позиция,
// роль скобки и leading trivia.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, v := range tokenViews(tokens) {
		from, to := fs.Resolve(v.Span)
		var sb strings.Builder
		fmt.Fprintf(&sb, "%3d: %-15s", i+1, v.Kind)
		if v.Text != "" {
			fmt.Fprintf(&sb, " %q", v.Text)
		}
		fmt.Fprintf(&sb, " at %d:%d-%d:%d", from.Line, from.Col, to.Line, to.Col)
		if v.Bracket != "" {
			fmt.Fprintf(&sb, " [%s]", v.Bracket)
		}
		if len(v.Leading) > 0 {
			fmt.Fprintf(&sb, " (leading: %s)", strings.Join(v.Leading, ", "))
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenViews(tokens))
}
