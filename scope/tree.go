package scope

import (
	"strings"

	"ramen/ast"
	"ramen/source"
)

// Tree is the frozen hierarchy of scopes built in pass 1. After Freeze it is
// read-only, which is what makes order-independent (and parallel) reference
// resolution safe in pass 2.
type Tree struct {
	scopes *ast.Arena[Scope]
	elems  *ast.Arena[Element]
	root   ScopeID
	frozen bool
}

// NewTree creates a tree holding just the implicit root scope.
func NewTree(span source.Span) *Tree {
	t := &Tree{
		scopes: ast.NewArena[Scope](1 << 4),
		elems:  ast.NewArena[Element](1 << 6),
	}
	t.root = t.newScope(NoScopeID, NoElemID, span)
	return t
}

// Root returns the implicit root scope's ID.
func (t *Tree) Root() ScopeID {
	return t.root
}

// Scope returns the scope for the given ID.
func (t *Tree) Scope(id ScopeID) *Scope {
	return t.scopes.Get(uint32(id))
}

// Elem returns the element for the given ID.
func (t *Tree) Elem(id ElemID) *Element {
	return t.elems.Get(uint32(id))
}

// Elems returns every element in declaration order.
func (t *Tree) Elems() []Element {
	return t.elems.Slice()
}

// Freeze marks pass 1 complete. Later structural mutation panics.
func (t *Tree) Freeze() {
	t.frozen = true
}

// Frozen reports whether the tree is sealed.
func (t *Tree) Frozen() bool {
	return t.frozen
}

func (t *Tree) newScope(parent ScopeID, owner ElemID, span source.Span) ScopeID {
	if t.frozen {
		panic("scope: mutating a frozen tree")
	}
	return ScopeID(t.scopes.Allocate(Scope{
		Parent: parent,
		Owner:  owner,
		Span:   span,
		Names:  make(map[string]Entry),
		Refs:   make(map[string]ElemID),
	}))
}

func (t *Tree) newElem(e Element) ElemID {
	if t.frozen {
		panic("scope: mutating a frozen tree")
	}
	return ElemID(t.elems.Allocate(e))
}

// LookupName looks a name up in one scope only; bare names never search
// ancestor scopes.
func (t *Tree) LookupName(id ScopeID, name string) (Entry, bool) {
	entry, ok := t.Scope(id).Names[name]
	return entry, ok
}

// LookupRef looks a refId up in one scope's ref-id table.
func (t *Tree) LookupRef(id ScopeID, ref string) (ElemID, bool) {
	elem, ok := t.Scope(id).Refs[ref]
	return elem, ok
}

// Path renders a scope's dot path from the root; the root itself is "".
func (t *Tree) Path(id ScopeID) string {
	if id == t.root {
		return ""
	}
	var parts []string
	for id != t.root && id.IsValid() {
		sc := t.Scope(id)
		owner := t.Elem(sc.Owner)
		parts = append(parts, owner.Name)
		id = sc.Parent
	}
	// reverse
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, ".")
}

// ElemPath renders an element's dot path from the root, for diagnostics.
func (t *Tree) ElemPath(id ElemID) string {
	e := t.Elem(id)
	prefix := t.Path(e.Scope)
	if prefix == "" {
		return e.Name
	}
	return prefix + "." + e.Name
}
