package ast

import (
	"strings"

	"ramen/source"
)

// SegmentKind distinguishes name segments from ref(id) segments.
type SegmentKind uint8

const (
	// SegName is a plain identifier segment.
	SegName SegmentKind = iota
	// SegRef is a ref(id) segment; the grammar allows it only in final
	// position.
	SegRef
)

// Segment is one step of a reference expression.
type Segment struct {
	Kind SegmentKind
	Text string
	Span source.Span
}

// RefExpr is an unresolved reference: either a bare name, a lone ref(id), or
// a dot path whose final segment may be a ref(id).
type RefExpr struct {
	Span     source.Span
	Segments []Segment
}

// IsBare reports whether the expression is a single plain name, resolved
// only in the scope that declares the referencing statement.
func (r *RefExpr) IsBare() bool {
	return len(r.Segments) == 1 && r.Segments[0].Kind == SegName
}

// IsLoneRef reports whether the expression is a single ref(id) with no
// leading path.
func (r *RefExpr) IsLoneRef() bool {
	return len(r.Segments) == 1 && r.Segments[0].Kind == SegRef
}

// String renders the expression in source form, for diagnostics.
func (r *RefExpr) String() string {
	var sb strings.Builder
	for i, seg := range r.Segments {
		if i > 0 {
			sb.WriteByte('.')
		}
		if seg.Kind == SegRef {
			sb.WriteString("ref(")
			sb.WriteString(seg.Text)
			sb.WriteByte(')')
		} else {
			sb.WriteString(seg.Text)
		}
	}
	return sb.String()
}

// EdgeDir is the direction variant of an edge declaration.
type EdgeDir uint8

const (
	// Forward is '->'.
	Forward EdgeDir = iota
	// Backward is '<-'.
	Backward
	// Undirected is '-'.
	Undirected
	// Bidirectional is '<->'.
	Bidirectional
)

func (d EdgeDir) String() string {
	switch d {
	case Forward:
		return "->"
	case Backward:
		return "<-"
	case Undirected:
		return "-"
	case Bidirectional:
		return "<->"
	}
	return "?"
}
