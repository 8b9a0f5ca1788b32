// Package token defines the lexical vocabulary of the Ramen diagram DSL.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     string literals where Text holds the decoded content between the
//     delimiters.
//   - Token.Span covers the full lexeme including delimiters.
//   - There is no comment syntax; '#' and '/' are invalid characters.
package token

import (
	"ramen/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a string or numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case String, Text, Number:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
