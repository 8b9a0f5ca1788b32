package ramen

import (
	"ramen/ast"
	"ramen/diag"
	"ramen/scope"
	"ramen/source"
)

// Document is the single output artifact of a compile call: the frozen scope
// tree, the resolved edges and metadata declarations, and the ordered
// diagnostic list. It is immutable once returned. A structurally incomplete
// document (unresolved references left at NoElemID) is still handed back so
// tooling can inspect it; callers must refuse to render when Success is
// false.
type Document struct {
	FileSet *source.FileSet
	File    source.FileID

	// AST keeps the reference expressions and property values the model
	// points into.
	AST *ast.Builder

	Tree     *scope.Tree
	Edges    []*scope.Edge
	Metadata []*scope.MetadataDecl

	Diagnostics []diag.Diagnostic
}

// Success reports whether the compile produced no error-severity
// diagnostics. Warnings are non-fatal.
func (d *Document) Success() bool {
	for i := range d.Diagnostics {
		if d.Diagnostics[i].Severity >= diag.SevError {
			return false
		}
	}
	return true
}

// Located materializes the diagnostic list into the line/column/length shape
// consumers expect, in the same order.
func (d *Document) Located() []diag.Located {
	return diag.LocateAll(d.Diagnostics, d.FileSet)
}

// Cancelled reports whether the compile was abandoned by context
// cancellation before producing a model.
func (d *Document) Cancelled() bool {
	return len(d.Diagnostics) == 1 && d.Diagnostics[0].Code == diag.Cancelled
}
