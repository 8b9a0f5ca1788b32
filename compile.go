// Package ramen compiles Ramen diagram source text into a resolved in-memory
// model plus a diagnostic list. The pipeline runs lexing and parsing, scope
// construction (pass 1), reference resolution over the frozen scope tree
// (pass 2), and metadata binding (pass 5); every stage collects diagnostics
// and continues with best-effort recovery so one compile surfaces every
// problem it can find. Rendering, file loading and CLI concerns live in
// surrounding tools.
package ramen

import (
	"context"

	"ramen/ast"
	"ramen/diag"
	"ramen/lexer"
	"ramen/meta"
	"ramen/parser"
	"ramen/resolve"
	"ramen/scope"
	"ramen/source"
)

// Options tunes one compile call.
type Options struct {
	// MaxDiagnostics caps the diagnostic list; 0 means the default of 256.
	MaxDiagnostics int
	// Jobs sets the parallelism of reference resolution; values below 2
	// resolve sequentially. Output is identical either way.
	Jobs int
}

const defaultMaxDiagnostics = 256

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return defaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}

// Compile turns one source text into a Document. It is pure and synchronous:
// no shared state survives between calls, so concurrent compiles are safe.
// The context is checked at phase boundaries only; on cancellation the
// pipeline abandons its work and returns a document holding a single
// Cancelled diagnostic and no model.
func Compile(ctx context.Context, name string, src []byte, opts Options) *Document {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	file := fs.Get(fileID)

	bag := diag.NewBag(opts.maxDiagnostics())
	reporter := &diag.BagReporter{Bag: bag}

	if ctx.Err() != nil {
		return cancelled(fs, fileID)
	}

	// lex + parse
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	parsed := parser.ParseFile(lx, builder, parser.Options{
		MaxErrors: uint(opts.maxDiagnostics()),
		Reporter:  reporter,
	})

	if ctx.Err() != nil {
		return cancelled(fs, fileID)
	}

	// pass 1: scope construction, then freeze before anything reads it
	built := scope.Build(builder, parsed.File, reporter)
	built.Tree.Freeze()

	if ctx.Err() != nil {
		return cancelled(fs, fileID)
	}

	// pass 2: order-independent reference resolution
	for _, d := range resolve.All(ctx, builder, built, opts.Jobs) {
		bag.Add(d)
	}

	if ctx.Err() != nil {
		return cancelled(fs, fileID)
	}

	// pass 5: metadata binding
	meta.Bind(builder, built, reporter)

	// validation: one stable, source-ordered list
	bag.Sort()

	return &Document{
		FileSet:     fs,
		File:        fileID,
		AST:         builder,
		Tree:        built.Tree,
		Edges:       built.Edges,
		Metadata:    built.Metas,
		Diagnostics: bag.Items(),
	}
}

func cancelled(fs *source.FileSet, fileID source.FileID) *Document {
	return &Document{
		FileSet: fs,
		File:    fileID,
		Diagnostics: []diag.Diagnostic{
			diag.NewError(diag.Cancelled, source.Span{File: fileID}, "compilation cancelled"),
		},
	}
}
