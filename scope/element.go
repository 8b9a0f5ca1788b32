package scope

import (
	"ramen/ast"
	"ramen/source"
)

// ElemKind distinguishes leaf nodes from containers.
type ElemKind uint8

const (
	ElemInvalid ElemKind = iota
	ElemNode
	ElemContainer
)

func (k ElemKind) String() string {
	switch k {
	case ElemNode:
		return "node"
	case ElemContainer:
		return "container"
	default:
		return "invalid"
	}
}

// Element is one declared diagram element. Scope is the declaring scope
// (a non-owning back-reference by ID); Child is set for containers only.
// Props stays nil until the metadata binder attaches assignments in pass 5.
type Element struct {
	Kind     ElemKind
	Name     string
	Ref      string // scope-local refId, "" if none
	Scope    ScopeID
	Child    ScopeID
	Span     source.Span
	NameSpan source.Span
	RefSpan  source.Span
	Props    *PropSet
}

// PropSet is an ordered property map: keys keep first-assignment order,
// values follow last-write-wins.
type PropSet struct {
	keys   []string
	values map[string]ast.PropValue
}

func NewPropSet() *PropSet {
	return &PropSet{
		values: make(map[string]ast.PropValue),
	}
}

// Set stores value under key, overwriting any earlier assignment.
func (ps *PropSet) Set(key string, value ast.PropValue) {
	if _, ok := ps.values[key]; !ok {
		ps.keys = append(ps.keys, key)
	}
	ps.values[key] = value
}

// Get returns the value bound to key.
func (ps *PropSet) Get(key string) (ast.PropValue, bool) {
	v, ok := ps.values[key]
	return v, ok
}

// Keys returns the keys in first-assignment order. The slice aliases
// internal storage.
func (ps *PropSet) Keys() []string {
	return ps.keys
}

// Len returns the number of distinct keys.
func (ps *PropSet) Len() int {
	return len(ps.keys)
}
