package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier: a letter followed by letters or digits.
	Ident
	// KwRef represents the 'ref' keyword.
	KwRef // ref

	// String represents a single-line string literal `"..."`.
	String
	// Text represents a multi-line string literal opened by `\"` and closed
	// by `"\`, captured verbatim.
	Text
	// Number represents an unsigned decimal literal with optional fraction.
	Number

	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// Dot represents '.'.
	Dot
	// Colon represents ':'.
	Colon
	// Pipe represents '|'.
	Pipe
	// Arrow represents '->'.
	Arrow
	// BackArrow represents '<-'.
	BackArrow
	// BiArrow represents '<->'.
	BiArrow
	// Dash represents '-'.
	Dash
)

var kindNames = [...]string{
	Invalid:   "invalid",
	EOF:       "eof",
	Ident:     "identifier",
	KwRef:     "'ref'",
	String:    "string",
	Text:      "multiline string",
	Number:    "number",
	LBrace:    "'{'",
	RBrace:    "'}'",
	LParen:    "'('",
	RParen:    "')'",
	Dot:       "'.'",
	Colon:     "':'",
	Pipe:      "'|'",
	Arrow:     "'->'",
	BackArrow: "'<-'",
	BiArrow:   "'<->'",
	Dash:      "'-'",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsEdgeOp reports whether the kind is one of the four edge operators.
func (k Kind) IsEdgeOp() bool {
	switch k {
	case Arrow, BackArrow, BiArrow, Dash:
		return true
	default:
		return false
	}
}
