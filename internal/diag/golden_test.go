package diag

import (
	"testing"

	"declc/internal/source"
)

func TestGoldenFormatting(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("decl.txt", []byte("void x;\nint f()();\n"))

	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     SemReturnFunction,
			Message:  "function returning function",
			Primary:  source.Span{File: id, Start: 8, End: 17},
		},
		{
			Severity: SevError,
			Code:     SemVariableOfVoid,
			Message:  "variable of\nvoid",
			Primary:  source.Span{File: id, Start: 0, End: 4},
			Notes:    []Note{{Span: source.Span{File: id, Start: 5, End: 6}, Msg: "declared here"}},
		},
	}

	got := FormatGoldenDiagnostics(diags, fs, false)
	want := "error " + SemVariableOfVoid.ID() + " decl.txt:1:1 variable of void\n" +
		"error " + SemReturnFunction.ID() + " decl.txt:2:1 function returning function"
	if got != want {
		t.Errorf("golden output:\n%s\nwant:\n%s", got, want)
	}

	withNotes := FormatGoldenDiagnostics(diags, fs, true)
	wantNotes := "error " + SemVariableOfVoid.ID() + " decl.txt:1:1 variable of void\n" +
		"note " + SemVariableOfVoid.ID() + " decl.txt:1:6 declared here\n" +
		"error " + SemReturnFunction.ID() + " decl.txt:2:1 function returning function"
	if withNotes != wantNotes {
		t.Errorf("golden output with notes:\n%s\nwant:\n%s", withNotes, wantNotes)
	}
}

func TestGoldenEmptyInputs(t *testing.T) {
	fs := source.NewFileSet()
	if got := FormatGoldenDiagnostics(nil, fs, false); got != "" {
		t.Errorf("empty diagnostics rendered %q", got)
	}
	if got := FormatGoldenDiagnostics([]Diagnostic{{}}, nil, false); got != "" {
		t.Errorf("nil file set rendered %q", got)
	}
}
