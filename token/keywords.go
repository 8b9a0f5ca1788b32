package token

// ref is the only reserved word of the language; every other letter-led
// lexeme is an identifier.
var keywords = map[string]Kind{
	"ref": KwRef,
}

// LookupKeyword returns the keyword kind for text, if it is reserved.
// Matching is case-sensitive.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}
