package lexer

import (
	"ramen/diag"
	"ramen/source"
)

// Options configures a Lexer. A nil Reporter silently drops lexical
// diagnostics; scanning continues either way.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
