package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. Codes are grouped into numeric blocks
// per pipeline stage.
type Code uint16

const (
	// UnknownCode is the zero value; real diagnostics never carry it.
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001
	LexInvalidChar        Code = 1002
	LexInvalidIdentStart  Code = 1003

	// Syntactic (2000-2999)
	SynInfo                 Code = 2000
	SynUnexpectedToken      Code = 2001
	SynExpectedClosingBrace Code = 2002
	SynEmptyContainer       Code = 2003
	SynUnexpectedEOF        Code = 2004

	// Structural, scope construction (3000-3999)
	ScopeInfo           Code = 3000
	ScopeDuplicateName  Code = 3001
	ScopeAmbiguousName  Code = 3002
	ScopeDuplicateRefID Code = 3003

	// Referential, resolution (4000-4999)
	RefInfo       Code = 4000
	RefUnresolved Code = 4001

	// Metadata binding (5000-5999)
	MetaInfo                 Code = 5000
	MetaInvalidPropertyValue Code = 5001
	MetaUnrecognizedKey      Code = 5002

	// Pipeline (9000-9999)
	Cancelled Code = 9001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	LexInfo:                  "Lexer information",
	LexUnterminatedString:    "Unterminated string literal",
	LexInvalidChar:           "Invalid character",
	LexInvalidIdentStart:     "Invalid identifier start",
	SynInfo:                  "Parser information",
	SynUnexpectedToken:       "Unexpected token",
	SynExpectedClosingBrace:  "Expected closing brace",
	SynEmptyContainer:        "Container has no elements",
	SynUnexpectedEOF:         "Unexpected end of input",
	ScopeInfo:                "Scope information",
	ScopeDuplicateName:       "Duplicate name in scope",
	ScopeAmbiguousName:       "Ambiguous name in scope",
	ScopeDuplicateRefID:      "Duplicate ref id in scope",
	RefInfo:                  "Resolver information",
	RefUnresolved:            "Unresolved reference",
	MetaInfo:                 "Metadata information",
	MetaInvalidPropertyValue: "Invalid property value",
	MetaUnrecognizedKey:      "Unrecognized property key",
	Cancelled:                "Compilation cancelled",
}

// ID renders the short stable identifier, e.g. "SYN2003".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SCP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("MET%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("CAN%04d", ic)
	}
	return "E0000"
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
