package parser

import (
	"strconv"

	"ramen/ast"
	"ramen/diag"
	"ramen/source"
	"ramen/token"
)

// parseMetadataBody parses a metadata block where the ':' is consumed and the
// lookahead is the opening '{'.
func (p *Parser) parseMetadataBody(start source.Span, target ast.RefExprID) (ast.StmtID, bool) {
	p.advance() // '{'
	return p.parseMetadataProps(start, target)
}

// parseMetadataProps parses PropertyAssignment* '}' with per-assignment
// recovery, so one bad property does not hide the rest of the block.
func (p *Parser) parseMetadataProps(start source.Span, target ast.RefExprID) (ast.StmtID, bool) {
	props := make([]ast.PropID, 0, 4)

	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynExpectedClosingBrace, diag.SevError, p.diagSpan(),
				"expected '}' to close metadata block")
			span := start.Cover(p.lastSpan)
			return p.builder.Stmts.NewMetadata(span, ast.MetadataStmt{
				Target: target,
				Props:  props,
			}), true
		}

		prop, ok := p.parsePropertyAssignment()
		if !ok {
			p.resyncProp()
			continue
		}
		props = append(props, p.builder.Stmts.NewProp(prop))
	}
	closing := p.advance() // '}'

	span := start.Cover(closing.Span)
	return p.builder.Stmts.NewMetadata(span, ast.MetadataStmt{
		Target: target,
		Props:  props,
	}), true
}

// parsePropertyAssignment parses Identifier ':' (String | Text | Number).
func (p *Parser) parsePropertyAssignment() (ast.Prop, bool) {
	key, ok := p.expect(token.Ident, diag.SynUnexpectedToken, "expected a property key")
	if !ok {
		return ast.Prop{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after property key"); !ok {
		return ast.Prop{}, false
	}

	tok := p.lx.Peek()
	switch tok.Kind {
	case token.String:
		p.advance()
		return ast.Prop{
			Key:     key.Text,
			KeySpan: key.Span,
			Value:   ast.PropValue{Kind: ast.PropString, Str: tok.Text, Span: tok.Span},
		}, true
	case token.Text:
		p.advance()
		return ast.Prop{
			Key:     key.Text,
			KeySpan: key.Span,
			Value:   ast.PropValue{Kind: ast.PropText, Str: tok.Text, Span: tok.Span},
		}, true
	case token.Number:
		p.advance()
		num, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
				"malformed number literal")
			return ast.Prop{}, false
		}
		return ast.Prop{
			Key:     key.Text,
			KeySpan: key.Span,
			Value:   ast.PropValue{Kind: ast.PropNumber, Num: num, Span: tok.Span},
		}, true
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(),
			"expected a string, multiline string or number property value")
		return ast.Prop{}, false
	}
}

// resyncProp skips to the next property key, the closing brace, or EOF.
func (p *Parser) resyncProp() {
	if !p.at(token.EOF) && !p.at(token.RBrace) {
		p.advance()
	}
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace, token.Ident:
			return
		default:
			p.advance()
		}
	}
}
