// Package ast holds the unresolved syntax tree produced by the parser.
// Nodes live in arenas addressed by typed 1-based IDs; the scope builder and
// resolver read them without copying. Reference expressions stay unresolved
// here; resolution happens over the frozen scope tree.
package ast

import (
	"ramen/source"
)

// Hints are optional capacity suggestions for the builder's arenas.
type Hints struct{ Files, Stmts, Refs uint }

// Builder owns every arena needed to construct one or more parsed files.
type Builder struct {
	Files *Files
	Stmts *Stmts
	Refs  *Arena[RefExpr]
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Refs == 0 {
		hints.Refs = 1 << 7
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
		Refs:  NewArena[RefExpr](hints.Refs),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) NewRef(expr RefExpr) RefExprID {
	return RefExprID(b.Refs.Allocate(expr))
}

func (b *Builder) Ref(id RefExprID) *RefExpr {
	return b.Refs.Get(uint32(id))
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}
