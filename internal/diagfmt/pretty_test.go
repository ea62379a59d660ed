package diagfmt

import (
	"strings"
	"testing"

	"declc/internal/diag"
	"declc/internal/source"
)

func run(t *testing.T, input string, d diag.Diagnostic, opts PrettyOpts) []string {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("decl.txt", []byte(input))
	d.Primary.File = id
	for i := range d.Notes {
		d.Notes[i].Span.File = id
	}
	bag := diag.NewBag(4)
	bag.Add(d)

	var sb strings.Builder
	Pretty(&sb, bag, fs, opts)
	return strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
}

func TestPrettyHeaderAndUnderline(t *testing.T) {
	d := diag.NewError(diag.SemVariableOfVoid,
		source.Span{Start: 0, End: 4}, "variable of void")
	lines := run(t, "void x;\n", d, PrettyOpts{})

	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	want := "decl.txt:1:1: ERROR " + diag.SemVariableOfVoid.ID() + ": variable of void"
	if lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if lines[1] != "    void x;" {
		t.Errorf("context = %q", lines[1])
	}
	if lines[2] != "    ^~~~" {
		t.Errorf("underline = %q", lines[2])
	}
}

func TestPrettyUnderlineAlignment(t *testing.T) {
	// The span starts mid-line; the caret must sit under its first column.
	d := diag.NewError(diag.SynExpectType,
		source.Span{Start: 4, End: 7}, "expected type specifier")
	lines := run(t, "int foo;\n", d, PrettyOpts{})

	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	if lines[2] != "        ^~~" {
		t.Errorf("underline = %q, want %q", lines[2], "        ^~~")
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	d := diag.NewError(diag.SemArrayOfVoid,
		source.Span{Start: 0, End: 4}, "array of void").
		WithNote(source.Span{}, "did you mean array of pointer to void?").
		WithFix("make the element type a pointer")

	lines := run(t, "void a[3];\n", d,
		PrettyOpts{ShowNotes: true, ShowFixes: true})
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "note: did you mean array of pointer to void?") {
		t.Errorf("missing note in %q", joined)
	}
	if !strings.Contains(joined, "fix: make the element type a pointer") {
		t.Errorf("missing fix in %q", joined)
	}

	lines = run(t, "void a[3];\n", d, PrettyOpts{})
	joined = strings.Join(lines, "\n")
	if strings.Contains(joined, "note:") || strings.Contains(joined, "fix:") {
		t.Errorf("notes or fixes shown despite options: %q", joined)
	}
}

func TestPrettyMaxCapsOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("decl.txt", []byte("void x;\n"))
	bag := diag.NewBag(8)
	for i := 0; i < 3; i++ {
		bag.Add(diag.NewError(diag.SemVariableOfVoid,
			source.Span{File: id, Start: 0, End: 4}, "variable of void"))
	}

	var sb strings.Builder
	Pretty(&sb, bag, fs, PrettyOpts{Max: 1})
	out := sb.String()
	if !strings.Contains(out, "... and 2 more") {
		t.Errorf("missing truncation marker in %q", out)
	}
	if got := strings.Count(out, "ERROR"); got != 1 {
		t.Errorf("printed %d diagnostics, want 1", got)
	}
}

func TestPrettyEmptySpan(t *testing.T) {
	d := diag.NewError(diag.IoReadFailed, source.Span{}, "failed to read input")
	lines := run(t, "void x;\n", d, PrettyOpts{})
	if len(lines) != 1 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}
	want := "ERROR " + diag.IoReadFailed.ID() + ": failed to read input"
	if lines[0] != want {
		t.Errorf("line = %q, want %q", lines[0], want)
	}
}
