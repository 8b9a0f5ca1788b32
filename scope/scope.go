package scope

import (
	"ramen/ast"
	"ramen/source"
)

// EntryKind tags a name-table entry. A collision never overwrites: the entry
// turns Ambiguous so later bare-name lookups fail deterministically instead
// of silently picking the last declaration.
type EntryKind uint8

const (
	// EntryUnique means exactly one element holds the name in this scope.
	EntryUnique EntryKind = iota
	// EntryAmbiguous means several elements share the name; bare lookup is
	// illegal, only refId access can reach them.
	EntryAmbiguous
)

// Entry is one name-table slot.
type Entry struct {
	Kind EntryKind
	Elem ElemID   // valid only for EntryUnique
	All  []ElemID // every declaration of the name, in source order
}

// Scope is one namespace: the implicit root or a container's interior.
// Elems preserves insertion order for deterministic rendering.
type Scope struct {
	Parent ScopeID
	Owner  ElemID // container that owns this scope; NoElemID for root
	Span   source.Span
	Elems  []ElemID
	Names  map[string]Entry
	Refs   map[string]ElemID
}

// Edge is a connection between two reference expressions, declared in Scope.
// From/To are written by the resolver in pass 2 and stay NoElemID when the
// reference cannot be resolved.
type Edge struct {
	Src      ast.RefExprID
	Dst      ast.RefExprID
	Dir      ast.EdgeDir
	Label    string
	HasLabel bool
	Scope    ScopeID
	Span     source.Span

	From ElemID
	To   ElemID
}

// MetadataDecl is a property block targeting a reference expression,
// declared in Scope. Elem is written by the resolver.
type MetadataDecl struct {
	Target ast.RefExprID
	Scope  ScopeID
	Span   source.Span
	Props  []ast.PropID

	Elem ElemID
}
