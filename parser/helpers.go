package parser

import (
	"ramen/diag"
	"ramen/source"
	"ramen/token"
)

// advance consumes the next token and remembers its span for diagnostics.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// diagSpan picks the best span for a diagnostic: the lookahead token, or the
// position right after the last consumed token when the lookahead is EOF.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports the given code and message.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	if p.at(token.EOF) {
		code = diag.SynUnexpectedEOF
	}
	p.report(code, diag.SevError, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if p.opts.Reporter == nil {
		return
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if !p.opts.Enough() {
		p.opts.Reporter.Report(code, sev, sp, msg, nil)
	}
}

// resync skips to the next statement boundary: a closing brace, the start of
// an identifier-led statement, a 'ref' keyword, or EOF. At least one token is
// consumed so error recovery always makes progress.
func (p *Parser) resync() {
	if !p.at(token.EOF) && !p.at(token.RBrace) {
		p.advance()
	}
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace, token.Ident, token.KwRef:
			return
		default:
			p.advance()
		}
	}
}
