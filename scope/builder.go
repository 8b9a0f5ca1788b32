// Package scope builds and owns the scope tree (pass 1). It walks the parsed
// statements depth-first, registering every element in its scope's name and
// ref-id tables, and collects edge and metadata declarations for the later
// passes. Violations are reported but never abort the build: the tree keeps
// best-effort entries so the resolver produces consistent follow-on errors
// instead of cascading unrelated ones.
package scope

import (
	"fmt"

	"ramen/ast"
	"ramen/diag"
	"ramen/source"
)

// BuildResult is everything pass 1 hands to the resolver and binder.
type BuildResult struct {
	Tree  *Tree
	Edges []*Edge
	Metas []*MetadataDecl
}

type builder struct {
	ast      *ast.Builder
	tree     *Tree
	reporter diag.Reporter
	edges    []*Edge
	metas    []*MetadataDecl
}

// Build constructs the scope tree for one parsed file. The returned tree is
// NOT yet frozen; the caller freezes it before resolution.
func Build(astb *ast.Builder, file ast.FileID, reporter diag.Reporter) *BuildResult {
	f := astb.Files.Get(file)
	b := &builder{
		ast:      astb,
		tree:     NewTree(f.Span),
		reporter: reporter,
	}

	b.walk(b.tree.Root(), f.Stmts)

	return &BuildResult{
		Tree:  b.tree,
		Edges: b.edges,
		Metas: b.metas,
	}
}

func (b *builder) walk(current ScopeID, stmts []ast.StmtID) {
	for _, id := range stmts {
		st := b.ast.Stmts.Get(id)
		switch st.Kind {
		case ast.StmtNode:
			node := b.ast.Stmts.Node(st)
			elem := b.tree.newElem(Element{
				Kind:     ElemNode,
				Name:     node.Name,
				Ref:      node.Ref,
				Scope:    current,
				Span:     st.Span,
				NameSpan: node.NameSpan,
				RefSpan:  node.RefSpan,
			})
			b.register(current, elem)

		case ast.StmtContainer:
			cont := b.ast.Stmts.Container(st)
			elem := b.tree.newElem(Element{
				Kind:     ElemContainer,
				Name:     cont.Name,
				Scope:    current,
				Span:     st.Span,
				NameSpan: cont.NameSpan,
			})
			child := b.tree.newScope(current, elem, st.Span)
			b.tree.Elem(elem).Child = child
			b.register(current, elem)
			b.walk(child, cont.Body)

		case ast.StmtEdge:
			edge := b.ast.Stmts.Edge(st)
			b.edges = append(b.edges, &Edge{
				Src:      edge.Src,
				Dst:      edge.Dst,
				Dir:      edge.Dir,
				Label:    edge.Label,
				HasLabel: edge.HasLabel,
				Scope:    current,
				Span:     st.Span,
			})

		case ast.StmtMetadata:
			meta := b.ast.Stmts.Metadata(st)
			b.metas = append(b.metas, &MetadataDecl{
				Target: meta.Target,
				Scope:  current,
				Span:   st.Span,
				Props:  meta.Props,
			})
		}
	}
}

// register puts an element into its scope's name table (and ref-id table if
// tagged), applying the collision rules:
//   - any collision involving a container is a DuplicateName error;
//   - two nodes sharing a name are AmbiguousName only when the colliding
//     pair carries no refId at all; one-sided or two-sided refIds make the
//     entry Ambiguous without a diagnostic (bare lookup becomes illegal);
//   - a refId declared twice in one scope is DuplicateRefID; the first
//     declaration keeps the slot.
func (b *builder) register(current ScopeID, id ElemID) {
	sc := b.tree.Scope(current)
	elem := b.tree.Elem(id)
	sc.Elems = append(sc.Elems, id)

	entry, exists := sc.Names[elem.Name]
	if !exists {
		sc.Names[elem.Name] = Entry{Kind: EntryUnique, Elem: id, All: []ElemID{id}}
	} else {
		prev := b.tree.Elem(entry.All[len(entry.All)-1])
		switch {
		case elem.Kind == ElemContainer || b.anyContainer(entry.All):
			b.report(diag.ScopeDuplicateName, elem.NameSpan,
				fmt.Sprintf("name %q is already declared in this scope", elem.Name),
				diag.Note{Span: prev.NameSpan, Msg: "previous declaration here"})
		case elem.Ref == "" && b.anyUntagged(entry.All):
			b.report(diag.ScopeAmbiguousName, elem.NameSpan,
				fmt.Sprintf("node %q is declared again without a refId to disambiguate it", elem.Name),
				diag.Note{Span: prev.NameSpan, Msg: "previous declaration here"})
		}
		// best-effort entry: the name stays known but bare lookup fails
		entry.Kind = EntryAmbiguous
		entry.Elem = NoElemID
		entry.All = append(entry.All, id)
		sc.Names[elem.Name] = entry
	}

	if elem.Ref == "" {
		return
	}
	if firstID, dup := sc.Refs[elem.Ref]; dup {
		first := b.tree.Elem(firstID)
		b.report(diag.ScopeDuplicateRefID, elem.RefSpan,
			fmt.Sprintf("refId %q is already used in this scope", elem.Ref),
			diag.Note{Span: first.RefSpan, Msg: "first use here"})
		return
	}
	sc.Refs[elem.Ref] = id
}

func (b *builder) anyContainer(ids []ElemID) bool {
	for _, id := range ids {
		if b.tree.Elem(id).Kind == ElemContainer {
			return true
		}
	}
	return false
}

func (b *builder) anyUntagged(ids []ElemID) bool {
	for _, id := range ids {
		if b.tree.Elem(id).Ref == "" {
			return true
		}
	}
	return false
}

func (b *builder) report(code diag.Code, sp source.Span, msg string, notes ...diag.Note) {
	if b.reporter == nil {
		return
	}
	b.reporter.Report(code, diag.SevError, sp, msg, notes)
}
