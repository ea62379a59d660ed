// Package token defines the token set of the declaration language and the
// keyword table mapping spellings to type bits per dialect.
package token

import (
	"declc/internal/source"
)

// Token is a single source token.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

// IsEnd reports whether the token terminates a statement.
func (t Token) IsEnd() bool {
	return t.Kind == EOF || t.Kind == Semicolon
}
