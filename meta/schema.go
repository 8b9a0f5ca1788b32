// Package meta binds validated property assignments to resolved elements
// (pass 5). Recognized keys are checked against a fixed schema; unrecognized
// keys are stored verbatim for forward compatibility and flagged as
// warnings, never errors.
package meta

import (
	"ramen/ast"
	"ramen/scope"
)

type applies uint8

const (
	toNode applies = 1 << iota
	toContainer
)

func (a applies) covers(kind scope.ElemKind) bool {
	switch kind {
	case scope.ElemNode:
		return a&toNode != 0
	case scope.ElemContainer:
		return a&toContainer != 0
	default:
		return false
	}
}

type valueKind uint8

const (
	// vString accepts a single-line string.
	vString valueKind = iota
	// vText accepts single- or multi-line strings.
	vText
	// vNumber accepts a numeric value.
	vNumber
	// vEnum accepts a single-line string drawn from a fixed set.
	vEnum
)

type keySpec struct {
	applies applies
	kind    valueKind
	enum    []string
}

// schema is the recognized-options table. Anything not listed here is stored
// verbatim with a warning.
var schema = map[string]keySpec{
	"layout":     {applies: toContainer, kind: vEnum, enum: []string{"manual", "horizontal", "vertical", "grid", "auto"}},
	"background": {applies: toContainer, kind: vString},
	"padding":    {applies: toContainer, kind: vNumber},
	"x":          {applies: toNode, kind: vNumber},
	"y":          {applies: toNode, kind: vNumber},
	"color":      {applies: toNode | toContainer, kind: vString},
	"shape":      {applies: toNode, kind: vEnum, enum: []string{"rectangle", "circle", "diamond", "cylinder"}},
	"size":       {applies: toNode, kind: vEnum, enum: []string{"small", "medium", "large"}},
	"content":    {applies: toNode | toContainer, kind: vText},
	"font":       {applies: toNode | toContainer, kind: vString},
}

// accepts reports whether value satisfies the key's value kind.
func (ks keySpec) accepts(value ast.PropValue) bool {
	switch ks.kind {
	case vString:
		return value.Kind == ast.PropString
	case vText:
		return value.Kind == ast.PropString || value.Kind == ast.PropText
	case vNumber:
		return value.Kind == ast.PropNumber
	case vEnum:
		if value.Kind != ast.PropString {
			return false
		}
		for _, v := range ks.enum {
			if value.Str == v {
				return true
			}
		}
		return false
	}
	return false
}

func (ks keySpec) expected() string {
	switch ks.kind {
	case vString:
		return "a string"
	case vText:
		return "a string or multiline string"
	case vNumber:
		return "a number"
	case vEnum:
		s := "one of"
		for i, v := range ks.enum {
			if i > 0 {
				s += ","
			}
			s += " \"" + v + "\""
		}
		return s
	}
	return "a value"
}
