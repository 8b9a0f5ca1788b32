package meta

import (
	"fmt"

	"ramen/ast"
	"ramen/diag"
	"ramen/scope"
)

// Bind merges every successfully resolved metadata declaration into its
// target element's property map, in source declaration order, key by key,
// last write wins. Declarations whose target stayed unresolved were already
// reported by the resolver and are skipped here.
func Bind(astb *ast.Builder, res *scope.BuildResult, reporter diag.Reporter) {
	for _, m := range res.Metas {
		if !m.Elem.IsValid() {
			continue
		}
		elem := res.Tree.Elem(m.Elem)
		if elem.Props == nil {
			elem.Props = scope.NewPropSet()
		}
		for _, pid := range m.Props {
			bindProp(astb.Stmts.Prop(pid), elem, reporter)
		}
	}
}

func bindProp(prop *ast.Prop, elem *scope.Element, reporter diag.Reporter) {
	spec, known := schema[prop.Key]
	if !known {
		// forward-compatible: keep the value, warn about the key
		reporter.Report(diag.MetaUnrecognizedKey, diag.SevWarning, prop.KeySpan,
			fmt.Sprintf("unrecognized property key %q", prop.Key), nil)
		elem.Props.Set(prop.Key, prop.Value)
		return
	}

	if !spec.applies.covers(elem.Kind) {
		reporter.Report(diag.MetaInvalidPropertyValue, diag.SevError, prop.KeySpan,
			fmt.Sprintf("property %q does not apply to a %s", prop.Key, elem.Kind), nil)
		return
	}

	if !spec.accepts(prop.Value) {
		reporter.Report(diag.MetaInvalidPropertyValue, diag.SevError, prop.Value.Span,
			fmt.Sprintf("invalid value for %q: expected %s", prop.Key, spec.expected()), nil)
		return
	}

	elem.Props.Set(prop.Key, prop.Value)
}
