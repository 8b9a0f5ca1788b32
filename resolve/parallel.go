package resolve

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ramen/ast"
	"ramen/diag"
	"ramen/scope"
)

// All resolves every edge and metadata declaration. With jobs > 1 items are
// resolved concurrently; diagnostics land in per-item slots and are merged in
// source declaration order, so output is identical no matter how the work
// was scheduled. The tree must be frozen before calling.
func All(ctx context.Context, astb *ast.Builder, res *scope.BuildResult, jobs int) []diag.Diagnostic {
	if !res.Tree.Frozen() {
		panic("resolve: scope tree is not frozen")
	}
	r := &resolver{ast: astb, tree: res.Tree}

	total := len(res.Edges) + len(res.Metas)
	slots := make([][]diag.Diagnostic, total)

	work := func(i int) {
		if i < len(res.Edges) {
			slots[i] = r.resolveEdge(res.Edges[i])
		} else {
			slots[i] = r.resolveMeta(res.Metas[i-len(res.Edges)])
		}
	}

	if jobs > 1 {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(jobs)
		for i := 0; i < total; i++ {
			i := i
			g.Go(func() error {
				work(i)
				return nil
			})
		}
		// workers never return errors; Wait only fences completion
		_ = g.Wait()
	} else {
		for i := 0; i < total; i++ {
			work(i)
		}
	}

	var out []diag.Diagnostic
	for _, batch := range slots {
		out = append(out, batch...)
	}
	return out
}

func (r *resolver) resolveEdge(e *scope.Edge) []diag.Diagnostic {
	var diags []diag.Diagnostic

	from, d := r.refExpr(e.Src, e.Scope)
	if d != nil {
		diags = append(diags, *d)
	}
	to, d := r.refExpr(e.Dst, e.Scope)
	if d != nil {
		diags = append(diags, *d)
	}

	e.From = from
	e.To = to
	return diags
}

func (r *resolver) resolveMeta(m *scope.MetadataDecl) []diag.Diagnostic {
	elem, d := r.refExpr(m.Target, m.Scope)
	m.Elem = elem
	if d != nil {
		return []diag.Diagnostic{*d}
	}
	return nil
}
