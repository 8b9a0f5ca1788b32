package lexer

import (
	"ramen/diag"
	"ramen/token"
)

// scanString scans a single-line string literal. There is no escape
// processing: a backslash is an ordinary byte and any '"' terminates the
// literal. A newline or EOF before the closing quote is reported as
// unterminated; the partial token is still produced so parsing can continue.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	contentStart := lx.cursor.Off

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.String,
				Span: sp,
				Text: string(lx.file.Content[contentStart:contentEnd]),
			}
		}
		if b == '\n' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{
		Kind: token.String,
		Span: sp,
		Text: string(lx.file.Content[contentStart:lx.cursor.Off]),
	}
}

// scanText scans a multi-line string literal: opened by `\"`, closed by `"\`,
// content captured verbatim across lines with no escape processing.
func (lx *Lexer) scanText() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	lx.cursor.Bump() // '"'
	contentStart := lx.cursor.Off

	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '"' && b1 == '\\' {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.Text,
				Span: sp,
				Text: string(lx.file.Content[contentStart:contentEnd]),
			}
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated multi-line string literal")
	return token.Token{
		Kind: token.Text,
		Span: sp,
		Text: string(lx.file.Content[contentStart:lx.cursor.Off]),
	}
}
