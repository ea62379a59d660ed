// Package diag defines the diagnostic model shared by the front end and the
// semantic checker.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// human-oriented Message, a primary source.Span, plus optional Notes (context
// and corrective hints) and Fixes (structured suggestions).
//
// Producers emit through the Reporter interface so they stay decoupled from
// storage and formatting. BagReporter aggregates into a Bag, which supports
// sorting, deduplication and golden formatting; DedupReporter filters
// repeats. The ReportBuilder helpers (ReportError, ReportWarning) let callers
// chain WithNote/WithHint/WithFix before Emit.
//
// The package performs no formatting or I/O itself; rendering lives in
// internal/diagfmt.
package diag
