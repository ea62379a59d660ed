package diag

import (
	"declc/internal/source"
)

// Note is a secondary message attached to a diagnostic, e.g. a corrective
// hint ("did you mean ...?") or a pointer to a related declaration.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a concrete text replacement.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested correction. Edits may be empty when the fix is purely
// advisory (the checker can name the legal form but not rewrite the source).
type Fix struct {
	Title string
	Edits []FixEdit
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

func (d Diagnostic) WithFix(title string, edits ...FixEdit) Diagnostic {
	d.Fixes = append(d.Fixes, Fix{Title: title, Edits: edits})
	return d
}
