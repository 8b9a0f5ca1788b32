// Package resolve implements pass 2: resolving every edge endpoint and
// metadata target against the frozen scope tree. Because the tree is sealed
// before resolution starts, results do not depend on declaration order —
// forward references cost nothing. Resolution writes only onto the Edge and
// MetadataDecl records, never onto scopes or elements, which is what makes
// the parallel path safe.
package resolve

import (
	"fmt"

	"ramen/ast"
	"ramen/diag"
	"ramen/scope"
)

type resolver struct {
	ast  *ast.Builder
	tree *scope.Tree
}

// refExpr resolves one reference expression from the scope that declared the
// referencing statement. It returns NoElemID plus a diagnostic on failure.
func (r *resolver) refExpr(id ast.RefExprID, from scope.ScopeID) (scope.ElemID, *diag.Diagnostic) {
	expr := r.ast.Ref(id)

	switch {
	case expr.IsBare():
		return r.bareName(expr, from)
	case expr.IsLoneRef():
		return r.loneRef(expr, from)
	default:
		return r.dotPath(expr)
	}
}

// bareName resolves a single plain name strictly within the declaring scope:
// never ancestor scopes, never nested containers.
func (r *resolver) bareName(expr *ast.RefExpr, from scope.ScopeID) (scope.ElemID, *diag.Diagnostic) {
	name := expr.Segments[0].Text
	entry, ok := r.tree.LookupName(from, name)
	if !ok {
		return scope.NoElemID, r.unresolved(expr, 0,
			fmt.Sprintf("no element named %q in %s", name, r.scopeLabel(from)))
	}
	if entry.Kind == scope.EntryAmbiguous {
		return scope.NoElemID, r.unresolved(expr, 0,
			fmt.Sprintf("name %q is ambiguous in %s; use a refId", name, r.scopeLabel(from)))
	}
	return entry.Elem, nil
}

// loneRef resolves ref(id) against the declaring scope's ref-id table.
func (r *resolver) loneRef(expr *ast.RefExpr, from scope.ScopeID) (scope.ElemID, *diag.Diagnostic) {
	ref := expr.Segments[0].Text
	elem, ok := r.tree.LookupRef(from, ref)
	if !ok {
		return scope.NoElemID, r.unresolved(expr, 0,
			fmt.Sprintf("no refId %q in %s", ref, r.scopeLabel(from)))
	}
	return elem, nil
}

// dotPath resolves a multi-segment path top-down from the root scope. Every
// non-final segment must name a container; the final segment names an
// element or, for a ref(id) segment, a refId of the scope reached so far.
func (r *resolver) dotPath(expr *ast.RefExpr) (scope.ElemID, *diag.Diagnostic) {
	current := r.tree.Root()

	for i, seg := range expr.Segments {
		last := i == len(expr.Segments)-1

		if seg.Kind == ast.SegRef {
			// the grammar guarantees final position
			elem, ok := r.tree.LookupRef(current, seg.Text)
			if !ok {
				return scope.NoElemID, r.unresolved(expr, i,
					fmt.Sprintf("no refId %q in %s", seg.Text, r.scopeLabel(current)))
			}
			return elem, nil
		}

		entry, ok := r.tree.LookupName(current, seg.Text)
		if !ok {
			return scope.NoElemID, r.unresolved(expr, i,
				fmt.Sprintf("no element named %q in %s", seg.Text, r.scopeLabel(current)))
		}
		if entry.Kind == scope.EntryAmbiguous {
			return scope.NoElemID, r.unresolved(expr, i,
				fmt.Sprintf("name %q is ambiguous in %s; use a refId", seg.Text, r.scopeLabel(current)))
		}

		if last {
			return entry.Elem, nil
		}

		elem := r.tree.Elem(entry.Elem)
		if elem.Kind != scope.ElemContainer {
			return scope.NoElemID, r.unresolved(expr, i,
				fmt.Sprintf("%q is a node, not a container", seg.Text))
		}
		current = elem.Child
	}

	// unreachable: the loop always returns on the final segment
	return scope.NoElemID, r.unresolved(expr, len(expr.Segments)-1, "empty reference")
}

func (r *resolver) unresolved(expr *ast.RefExpr, segment int, reason string) *diag.Diagnostic {
	d := diag.NewError(diag.RefUnresolved, expr.Segments[segment].Span,
		fmt.Sprintf("cannot resolve %q: %s", expr.String(), reason))
	return &d
}

func (r *resolver) scopeLabel(id scope.ScopeID) string {
	path := r.tree.Path(id)
	if path == "" {
		return "the root scope"
	}
	return fmt.Sprintf("container %q", path)
}
