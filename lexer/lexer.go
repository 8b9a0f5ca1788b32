// Package lexer turns Ramen source text into a token stream. The lexer never
// aborts: offending characters are reported and skipped so one pass surfaces
// every lexical problem in the input.
package lexer

import (
	"fmt"

	"ramen/diag"
	"ramen/source"
	"ramen/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. Whitespace and invalid runs are
// consumed internally; invalid runs are reported, never surfaced as tokens.
// After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipSpace()

		if lx.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: lx.EmptySpan(),
				Text: "",
			}
		}

		ch := lx.cursor.Peek()
		switch {
		case isLetterByte(ch):
			return lx.scanIdentOrKeyword()

		case ch >= utf8RuneSelf:
			r, _ := lx.peekRune()
			if isIdentStartRune(r) {
				return lx.scanIdentOrKeyword()
			}
			lx.skipInvalidRun()

		case isDec(ch):
			return lx.scanNumber()

		case ch == '"':
			return lx.scanString()

		case ch == '\\':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '"' {
				return lx.scanText()
			}
			lx.skipInvalidRun()

		case ch == '_':
			lx.skipInvalidIdent()

		default:
			tok, ok := lx.scanOperatorOrPunct()
			if ok {
				return tok
			}
			// reported inside; rescan from the next character
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) skipSpace() {
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipInvalidRun consumes a run of the same offending byte (or one offending
// rune) and reports it once, so "####" costs one diagnostic, not four.
func (lx *Lexer) skipInvalidRun() {
	start := lx.cursor.Mark()
	bad := lx.cursor.Peek()
	if bad >= utf8RuneSelf {
		r, _ := lx.peekRune()
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexInvalidChar, sp, fmt.Sprintf("invalid character %q", r))
		return
	}
	for !lx.cursor.EOF() && lx.cursor.Peek() == bad {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexInvalidChar, sp, fmt.Sprintf("invalid character %q", rune(bad)))
}

// skipInvalidIdent consumes an identifier-like run that starts with a
// character identifiers cannot start with (underscore) and reports it as one
// diagnostic covering the whole run.
func (lx *Lexer) skipInvalidIdent() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '_' || isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			r, _ := lx.peekRune()
			if isIdentContinueRune(r) {
				lx.bumpRune()
				continue
			}
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexInvalidIdentStart, sp,
		fmt.Sprintf("%q cannot start an identifier", string(lx.file.Content[sp.Start:sp.End])))
}
