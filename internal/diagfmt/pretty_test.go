package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"relaxfmt/internal/diag"
	"relaxfmt/internal/source"
)

func sampleBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("a = 1\nfoo(\"unterminated\n")
	fileID := fs.Add("/home/user/project/src/test.ex", content, 0)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 10, End: 23},
		"unterminated string literal",
	).WithNote(source.Span{File: fileID, Start: 6, End: 9}, "call starts here")
	bag.Add(d)
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := sampleBag(t)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.ex:2:5:"},
		{"Relative path", PathModeRelative, "src/test.ex:2:5:"},
		{"Basename only", PathModeBasename, "test.ex:2:5:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode, BaseDir: "/home/user/project"})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "error[LEX1002]: unterminated string literal") {
				t.Errorf("Expected header with code, got:\n%s", output)
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true})

	want := strings.Join([]string{
		"test.ex:2:5: error[LEX1002]: unterminated string literal",
		"1 | a = 1",
		"2 | foo(\"unterminated",
		"  |     ^" + strings.Repeat("~", 12),
		"  note: test.ex:2:1: call starts here",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyNoColorByDefault(t *testing.T) {
	bag, fs := sampleBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("unexpected escape codes: %q", buf.String())
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{Color: true})
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected escape codes with Color: %q", buf.String())
	}
}

func TestShort(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("x.ex", []byte("foo(1"))
	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.SynUnclosedDelimiter, source.Span{File: id, Start: 5, End: 5}, "expected ')'"))
	var buf bytes.Buffer
	if err := Short(&buf, bag, fs, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "error SYN2002 x.ex:1:6 expected ')'\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
