package diag

import (
	"testing"

	"relaxfmt/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("testdata/golden/sample.ex", []byte("a\nb\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
				{Span: source.Span{File: 99, Start: 0, End: 0}, Msg: "dangling"},
			},
		},
		{
			Severity: SevWarning,
			Code:     FmtDeprecatedRename,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.ex:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.ex:2:1 note line\n" +
		"warning FMT7001 testdata/golden/sample.ex:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagLimitSortDedup(t *testing.T) {
	b := NewBag(2)
	sp := source.Span{File: 0, Start: 4, End: 5}
	if !b.Add(NewError(SynUnexpectedToken, sp, "x")) {
		t.Fatal("first Add must succeed")
	}
	b.Add(New(SevInfo, FmtDeprecatedRename, source.Span{Start: 1, End: 2}, "y"))
	if b.Add(NewError(SynMissingEnd, sp, "dropped")) {
		t.Fatal("Add past the limit must fail")
	}
	if !b.HasErrors() {
		t.Fatal("expected errors")
	}
	b.Sort()
	if b.Items()[0].Code != FmtDeprecatedRename {
		t.Fatalf("sort by start failed: %+v", b.Items())
	}

	other := NewBag(0)
	other.Add(NewError(SynUnexpectedToken, sp, "x again"))
	b.Merge(other)
	if b.Len() != 3 {
		t.Fatalf("Merge: len = %d", b.Len())
	}
	b.Dedup()
	if b.Len() != 2 {
		t.Fatalf("Dedup: len = %d", b.Len())
	}
}

func TestCodeID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:      "LEX1001",
		SynCommentInExpr:    "SYN2005",
		IOLoadFileError:     "IO4001",
		ProjConfigInvalid:   "PRJ5001",
		ObsTimings:          "OBS6001",
		FmtDeprecatedRename: "FMT7001",
		Code(9999):          "E0000",
	}
	for c, want := range cases {
		if got := c.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", c, got, want)
		}
	}
	if Code(9999).Title() != "Unknown error" {
		t.Errorf("unknown code title = %q", Code(9999).Title())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(BagReporter{Bag: bag})
	sp := source.Span{Start: 1, End: 2}
	ReportError(r, SynUnexpectedToken, sp, "same").Emit()
	ReportError(r, SynUnexpectedToken, sp, "same").Emit()
	b := ReportError(r, SynUnclosedDelimiter, sp, "unclosed").WithNote(sp, "opened here")
	b.Emit()
	b.Emit()
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
	if len(bag.Items()[1].Notes) != 1 {
		t.Fatalf("note lost: %+v", bag.Items()[1])
	}
}

func TestFormatGoldenNotesFollowParent(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("stdin", []byte("foo(1"))
	diags := []Diagnostic{{
		Severity: SevError,
		Code:     SynUnclosedDelimiter,
		Message:  "expected ')'",
		Primary:  source.Span{File: file, Start: 5, End: 5},
		Notes:    []Note{{Span: source.Span{File: file, Start: 3, End: 4}, Msg: "opened here"}},
	}}

	want := "error SYN2002 stdin:1:6 expected ')'\n" +
		"note SYN2002 stdin:1:4 opened here"
	if got := FormatGoldenDiagnostics(diags, fs, true); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
	if got := FormatGoldenDiagnostics(diags, fs, false); got != "error SYN2002 stdin:1:6 expected ')'" {
		t.Fatalf("without notes: %q", got)
	}
}
