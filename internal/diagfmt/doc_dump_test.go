package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"relaxfmt/internal/doc"
)

func sampleDoc() doc.Document {
	return doc.GroupOf(doc.Concat(
		doc.NestBy(doc.Concat(doc.Str("("), doc.StrictBreak(""), doc.Str("x")), 2),
		doc.StrictBreak(""),
		doc.Str(")"),
	))
}

func TestFormatDocPretty(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDocPretty(&buf, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"Group self",
		"└─ Cons",
		"   ├─ Nest 2 always",
		"   │  └─ Cons",
		`   │     ├─ Text "("`,
		"   │     └─ Cons",
		`   │        ├─ Break "" strict`,
		`   │        └─ Text "x"`,
		"   └─ Cons",
		`      ├─ Break "" strict`,
		`      └─ Text ")"`,
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatDocJSONKeepsEmptySeparator(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDocJSON(&buf, doc.StrictBreak("")); err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out["type"] != "break" || out["text"] != "" || out["mode"] != "strict" {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
}

func TestFormatDocYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatDocYAML(&buf, sampleDoc()); err != nil {
		t.Fatal(err)
	}
	var out DocNodeOutput
	if err := yaml.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("yaml: %v\n%s", err, buf.String())
	}
	if out.Type != "group" || len(out.Children) != 1 || out.Children[0].Type != "cons" {
		t.Fatalf("unexpected tree: %+v", out)
	}
	nest := out.Children[0].Children[0]
	if nest.Type != "nest" || nest.Indent != "2" || nest.Mode != "always" {
		t.Fatalf("unexpected nest: %+v", nest)
	}
}

func TestDocOutputMarkersAndTags(t *testing.T) {
	out := BuildDocOutput(doc.Concat(doc.Line, doc.Color(doc.Str("a"), "cyan")))
	if out.Children[0].Type != "line" {
		t.Fatalf("marker: %+v", out.Children[0])
	}
	tag := out.Children[1]
	if tag.Type != "tagged" || tag.Tag != doc.TagColor || len(tag.Children) != 2 {
		t.Fatalf("tagged: %+v", tag)
	}
}
