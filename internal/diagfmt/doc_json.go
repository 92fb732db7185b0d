package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"relaxfmt/internal/doc"
)

// DocNodeOutput — сериализуемая форма узла документа для JSON и YAML.
type DocNodeOutput struct {
	Type     string          `json:"type" yaml:"type"`
	Text     *string         `json:"text,omitempty" yaml:"text,omitempty"`
	Mode     string          `json:"mode,omitempty" yaml:"mode,omitempty"`
	Indent   string          `json:"indent,omitempty" yaml:"indent,omitempty"`
	Tag      string          `json:"tag,omitempty" yaml:"tag,omitempty"`
	Children []DocNodeOutput `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildDocOutput converts d into the dump schema. Text holds the content of
// Text leaves and the separator of breaks; an empty separator is kept.
func BuildDocOutput(d doc.Document) DocNodeOutput {
	str := func(s string) *string { return &s }
	switch n := d.(type) {
	case nil:
		return DocNodeOutput{Type: "nil"}
	case doc.Text:
		return DocNodeOutput{Type: "text", Text: str(n.Content)}
	case doc.Cons:
		return DocNodeOutput{Type: "cons", Children: []DocNodeOutput{BuildDocOutput(n.Left), BuildDocOutput(n.Right)}}
	case doc.Break:
		return DocNodeOutput{Type: "break", Text: str(n.Sep), Mode: n.Mode.String()}
	case doc.Nest:
		return DocNodeOutput{
			Type:     "nest",
			Mode:     n.Mode.String(),
			Indent:   n.Indent.String(),
			Children: []DocNodeOutput{BuildDocOutput(n.Inner)},
		}
	case doc.Group:
		return DocNodeOutput{Type: "group", Mode: n.Mode.String(), Children: []DocNodeOutput{BuildDocOutput(n.Inner)}}
	case doc.Force:
		return DocNodeOutput{Type: "force", Children: []DocNodeOutput{BuildDocOutput(n.Inner)}}
	case doc.Tagged:
		out := DocNodeOutput{Type: "tagged", Tag: n.Tag}
		for _, a := range n.Args {
			out.Children = append(out.Children, BuildDocOutput(a))
		}
		return out
	case doc.Marker:
		return DocNodeOutput{Type: n.String()}
	}
	return DocNodeOutput{Type: fmt.Sprintf("%T", d)}
}

// FormatDocJSON writes d as indented JSON.
func FormatDocJSON(w io.Writer, d doc.Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDocOutput(d))
}

// FormatDocYAML writes d as YAML.
func FormatDocYAML(w io.Writer, d doc.Document) error {
	out, err := yaml.MarshalWithOptions(BuildDocOutput(d), yaml.Indent(2))
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	_, err = w.Write(out)
	return err
}
