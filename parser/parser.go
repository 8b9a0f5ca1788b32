// Package parser builds the unresolved syntax tree from the token stream.
// Statement kinds are disambiguated with bounded lookahead after the leading
// identifier or ref expression. On error the parser skips to the next
// statement boundary so a single pass reports every independent problem.
package parser

import (
	"ramen/ast"
	"ramen/diag"
	"ramen/lexer"
	"ramen/source"
	"ramen/token"
)

// Options configures a parse run.
type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error limit has been reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result carries the parsed file and, when the reporter was a BagReporter,
// its bag.
type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing one document.
type Parser struct {
	lx       *lexer.Lexer
	builder  *ast.Builder
	file     ast.FileID
	opts     Options
	lastSpan source.Span
}

// ParseFile parses one document into the builder's arenas.
func ParseFile(lx *lexer.Lexer, builder *ast.Builder, opts Options) Result {
	p := Parser{
		lx:       lx,
		builder:  builder,
		file:     builder.NewFile(lx.EmptySpan()),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseStatements()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{File: p.file, Bag: bag}
}

// parseStatements is the top-level loop over the implicit root scope.
func (p *Parser) parseStatements() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		if p.at(token.RBrace) {
			// stray closing brace at top level
			tok := p.advance()
			p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "unexpected '}'")
			continue
		}
		stmtID, ok := p.parseStatement()
		if !ok {
			p.resync()
			continue
		}
		p.builder.PushStmt(p.file, stmtID)
	}
	p.builder.Files.Get(p.file).Span = startSpan.Cover(p.lastSpan)
}

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		return p.parseIdentLed()
	case token.KwRef:
		refID, ok := p.parseRefExpr()
		if !ok {
			return ast.NoStmtID, false
		}
		return p.parseRefLedTail(refID)
	default:
		tok := p.lx.Peek()
		if tok.Kind == token.EOF {
			p.report(diag.SynUnexpectedEOF, diag.SevError, p.diagSpan(), "unexpected end of input")
			return ast.NoStmtID, false
		}
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			"expected a container, node, edge or metadata declaration, found "+tok.Kind.String())
		return ast.NoStmtID, false
	}
}

// parseIdentLed handles every statement that begins with an identifier:
// container, node (with or without refId), edge, or metadata.
func (p *Parser) parseIdentLed() (ast.StmtID, bool) {
	name := p.advance()

	switch p.lx.Peek().Kind {
	case token.LBrace:
		return p.parseContainerBody(name)

	case token.Colon:
		p.advance()
		switch p.lx.Peek().Kind {
		case token.LBrace:
			target := p.builder.NewRef(ast.RefExpr{
				Span:     name.Span,
				Segments: []ast.Segment{{Kind: ast.SegName, Text: name.Text, Span: name.Span}},
			})
			return p.parseMetadataBody(name.Span, target)
		case token.Ident:
			ref := p.advance()
			return p.builder.Stmts.NewNode(name.Span.Cover(ref.Span), ast.NodeStmt{
				Name:     name.Text,
				NameSpan: name.Span,
				Ref:      ref.Text,
				RefSpan:  ref.Span,
			}), true
		default:
			p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(),
				"expected a refId or '{' after ':'")
			return ast.NoStmtID, false
		}

	case token.Dot:
		src, ok := p.parseRefRest(ast.Segment{Kind: ast.SegName, Text: name.Text, Span: name.Span})
		if !ok {
			return ast.NoStmtID, false
		}
		return p.parseRefLedTail(src)

	case token.Arrow, token.BackArrow, token.BiArrow, token.Dash:
		src := p.builder.NewRef(ast.RefExpr{
			Span:     name.Span,
			Segments: []ast.Segment{{Kind: ast.SegName, Text: name.Text, Span: name.Span}},
		})
		return p.parseEdgeTail(src)

	default:
		// the statement simply ends: a plain node
		return p.builder.Stmts.NewNode(name.Span, ast.NodeStmt{
			Name:     name.Text,
			NameSpan: name.Span,
		}), true
	}
}

// parseRefLedTail finishes a statement whose leading reference expression is
// already parsed: either an edge or a metadata declaration.
func (p *Parser) parseRefLedTail(ref ast.RefExprID) (ast.StmtID, bool) {
	switch p.lx.Peek().Kind {
	case token.Arrow, token.BackArrow, token.BiArrow, token.Dash:
		return p.parseEdgeTail(ref)
	case token.Colon:
		p.advance()
		if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to open a metadata block"); !ok {
			return ast.NoStmtID, false
		}
		return p.parseMetadataProps(p.builder.Ref(ref).Span, ref)
	default:
		p.report(diag.SynUnexpectedToken, diag.SevError, p.diagSpan(),
			"expected an edge operator or ':' after a reference expression")
		return ast.NoStmtID, false
	}
}

// parseContainerBody parses '{' Statement+ '}' after the container name.
func (p *Parser) parseContainerBody(name token.Token) (ast.StmtID, bool) {
	open, _ := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")

	body := make([]ast.StmtID, 0, 4)
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynExpectedClosingBrace, diag.SevError, p.diagSpan(),
				"expected '}' to close container '"+name.Text+"'")
			span := name.Span.Cover(p.lastSpan)
			return p.builder.Stmts.NewContainer(span, ast.ContainerStmt{
				Name:     name.Text,
				NameSpan: name.Span,
				Body:     body,
			}), true
		}
		stmtID, ok := p.parseStatement()
		if !ok {
			p.resync()
			continue
		}
		body = append(body, stmtID)
	}
	closing := p.advance() // '}'

	if len(body) == 0 {
		p.report(diag.SynEmptyContainer, diag.SevError, open.Span.Cover(closing.Span),
			"container '"+name.Text+"' must declare at least one element")
	}

	span := name.Span.Cover(closing.Span)
	return p.builder.Stmts.NewContainer(span, ast.ContainerStmt{
		Name:     name.Text,
		NameSpan: name.Span,
		Body:     body,
	}), true
}

// parseEdgeTail parses the edge operator, target reference and optional
// '|' label after the source reference.
func (p *Parser) parseEdgeTail(src ast.RefExprID) (ast.StmtID, bool) {
	op := p.advance()
	var dir ast.EdgeDir
	switch op.Kind {
	case token.Arrow:
		dir = ast.Forward
	case token.BackArrow:
		dir = ast.Backward
	case token.BiArrow:
		dir = ast.Bidirectional
	case token.Dash:
		dir = ast.Undirected
	}

	dst, ok := p.parseRefExpr()
	if !ok {
		return ast.NoStmtID, false
	}

	edge := ast.EdgeStmt{Src: src, Dst: dst, Dir: dir}
	end := p.builder.Ref(dst).Span

	if p.at(token.Pipe) {
		p.advance()
		label, labelOK := p.expect(token.String, diag.SynUnexpectedToken,
			"expected a string label after '|'")
		if !labelOK {
			return ast.NoStmtID, false
		}
		edge.Label = label.Text
		edge.HasLabel = true
		end = label.Span
	}

	span := p.builder.Ref(src).Span.Cover(end)
	return p.builder.Stmts.NewEdge(span, edge), true
}
