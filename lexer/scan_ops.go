package lexer

import (
	"ramen/token"
)

// scanOperatorOrPunct scans punctuation and edge operators, longest match
// first so "<->" wins over "<-". Unknown characters are reported and skipped;
// the caller rescans from the next position.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()

	mk := func(k token.Kind) (token.Token, bool) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: k,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		}, true
	}

	switch {
	case lx.try3('<', '-', '>'):
		return mk(token.BiArrow)
	case lx.try2('<', '-'):
		return mk(token.BackArrow)
	case lx.try2('-', '>'):
		return mk(token.Arrow)
	}

	switch lx.cursor.Peek() {
	case '-':
		lx.cursor.Bump()
		return mk(token.Dash)
	case '{':
		lx.cursor.Bump()
		return mk(token.LBrace)
	case '}':
		lx.cursor.Bump()
		return mk(token.RBrace)
	case '(':
		lx.cursor.Bump()
		return mk(token.LParen)
	case ')':
		lx.cursor.Bump()
		return mk(token.RParen)
	case '.':
		lx.cursor.Bump()
		return mk(token.Dot)
	case ':':
		lx.cursor.Bump()
		return mk(token.Colon)
	case '|':
		lx.cursor.Bump()
		return mk(token.Pipe)
	}

	lx.skipInvalidRun()
	return token.Token{}, false
}
