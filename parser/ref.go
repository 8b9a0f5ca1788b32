package parser

import (
	"ramen/ast"
	"ramen/diag"
	"ramen/token"
)

// parseRefExpr parses a full reference expression from its first token:
// a bare name, a dot path, or a lone ref(id).
func (p *Parser) parseRefExpr() (ast.RefExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		name := p.advance()
		first := ast.Segment{Kind: ast.SegName, Text: name.Text, Span: name.Span}
		if p.at(token.Dot) {
			return p.parseRefRest(first)
		}
		return p.builder.NewRef(ast.RefExpr{
			Span:     name.Span,
			Segments: []ast.Segment{first},
		}), true

	case token.KwRef:
		seg, ok := p.parseRefSegment()
		if !ok {
			return ast.NoRefExprID, false
		}
		if p.at(token.Dot) {
			p.report(diag.SynUnexpectedToken, diag.SevError, p.lx.Peek().Span,
				"ref(id) must be the final segment of a path")
			return ast.NoRefExprID, false
		}
		return p.builder.NewRef(ast.RefExpr{
			Span:     seg.Span,
			Segments: []ast.Segment{seg},
		}), true

	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(),
			"expected a reference expression")
		return ast.NoRefExprID, false
	}
}

// parseRefRest parses the '.'-separated remainder of a path whose first
// segment is already consumed.
func (p *Parser) parseRefRest(first ast.Segment) (ast.RefExprID, bool) {
	segments := []ast.Segment{first}
	span := first.Span

	for p.at(token.Dot) {
		p.advance()
		switch p.lx.Peek().Kind {
		case token.Ident:
			name := p.advance()
			segments = append(segments, ast.Segment{Kind: ast.SegName, Text: name.Text, Span: name.Span})
			span = span.Cover(name.Span)
		case token.KwRef:
			seg, ok := p.parseRefSegment()
			if !ok {
				return ast.NoRefExprID, false
			}
			segments = append(segments, seg)
			span = span.Cover(seg.Span)
			if p.at(token.Dot) {
				p.report(diag.SynUnexpectedToken, diag.SevError, p.lx.Peek().Span,
					"ref(id) must be the final segment of a path")
				return ast.NoRefExprID, false
			}
		default:
			p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(),
				"expected an identifier or ref(id) after '.'")
			return ast.NoRefExprID, false
		}
	}

	return p.builder.NewRef(ast.RefExpr{Span: span, Segments: segments}), true
}

// parseRefSegment parses 'ref' '(' Identifier ')'.
func (p *Parser) parseRefSegment() (ast.Segment, bool) {
	kw := p.advance() // 'ref'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'ref'"); !ok {
		return ast.Segment{}, false
	}
	id, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a refId inside ref(...)")
	if !ok {
		return ast.Segment{}, false
	}
	closing, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' to close ref(...)")
	if !ok {
		return ast.Segment{}, false
	}
	return ast.Segment{
		Kind: ast.SegRef,
		Text: id.Text,
		Span: kw.Span.Cover(closing.Span),
	}, true
}
