package resolve_test

import (
	"context"
	"strings"
	"testing"

	"ramen/ast"
	"ramen/diag"
	"ramen/lexer"
	"ramen/parser"
	"ramen/resolve"
	"ramen/scope"
	"ramen/source"
)

func resolveSource(t *testing.T, input string, jobs int) (*ast.Builder, *scope.BuildResult, []diag.Diagnostic) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ramen", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(lx, builder, parser.Options{Reporter: reporter})

	built := scope.Build(builder, res.File, reporter)
	if bag.HasErrors() {
		t.Fatalf("setup source must build cleanly: %v", bag.Items())
	}
	built.Tree.Freeze()

	diags := resolve.All(context.Background(), builder, built, jobs)
	return builder, built, diags
}

func TestResolveForwardReference(t *testing.T) {
	// the edge precedes both declarations
	_, built, diags := resolveSource(t, "a -> b\na\nb", 1)
	if len(diags) != 0 {
		t.Fatalf("forward references must resolve: %v", diags)
	}
	edge := built.Edges[0]
	if !edge.From.IsValid() || !edge.To.IsValid() {
		t.Fatal("resolved endpoints missing")
	}
	if built.Tree.Elem(edge.From).Name != "a" || built.Tree.Elem(edge.To).Name != "b" {
		t.Error("endpoints bound to the wrong elements")
	}
}

func TestResolveBareNameIsScopeLocal(t *testing.T) {
	// the root edge must not see 'app' inside the container
	_, _, diags := resolveSource(t, "Outer { app }\nweb\nweb -> app", 1)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Code != diag.RefUnresolved {
		t.Errorf("got code %s, want RefUnresolved", d.Code.ID())
	}
	if !strings.Contains(d.Message, `"app"`) {
		t.Errorf("message should name the failing reference: %s", d.Message)
	}
}

func TestResolveBareNameNotAncestors(t *testing.T) {
	// a name in the root scope is invisible inside the container
	_, _, diags := resolveSource(t, "web\nOuter { app\napp -> web }", 1)
	if len(diags) != 1 || diags[0].Code != diag.RefUnresolved {
		t.Fatalf("bare names never search ancestor scopes: %v", diags)
	}
}

func TestResolveLoneRef(t *testing.T) {
	_, built, diags := resolveSource(t, "db :primary\ndb :replica\nref(primary) -> ref(replica)", 1)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	edge := built.Edges[0]
	if built.Tree.Elem(edge.From).Ref != "primary" || built.Tree.Elem(edge.To).Ref != "replica" {
		t.Error("refIds bound to the wrong elements")
	}
}

func TestResolveDotPathFromRoot(t *testing.T) {
	input := "Frontend { app }\nBackend { api\ndb :store }\nFrontend.app -> Backend.api\nFrontend.app -> Backend.ref(store)"
	_, built, diags := resolveSource(t, input, 1)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	tree := built.Tree
	if tree.ElemPath(built.Edges[0].To) != "Backend.api" {
		t.Errorf("got %q", tree.ElemPath(built.Edges[0].To))
	}
	if tree.Elem(built.Edges[1].To).Ref != "store" {
		t.Error("final ref(id) segment must use the reached scope's ref table")
	}
}

func TestResolveDotPathRootRelativeInsideContainer(t *testing.T) {
	// dotted paths always start at the root, even when declared deeper
	input := "Frontend { app\napp -> Backend.api }\nBackend { api }"
	_, _, diags := resolveSource(t, input, 1)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}

func TestResolveThroughNodeFails(t *testing.T) {
	_, _, diags := resolveSource(t, "leaf\nx\nx -> leaf.inner", 1)
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	if !strings.Contains(diags[0].Message, "not a container") {
		t.Errorf("message should explain the kind mismatch: %s", diags[0].Message)
	}
}

func TestResolveAmbiguousName(t *testing.T) {
	_, _, diags := resolveSource(t, "db :a\ndb :b\nx\nx -> db", 1)
	if len(diags) != 1 {
		t.Fatalf("got %v", diags)
	}
	if !strings.Contains(diags[0].Message, "ambiguous") || !strings.Contains(diags[0].Message, "refId") {
		t.Errorf("message should suggest a refId: %s", diags[0].Message)
	}
}

func TestResolveMetadataTarget(t *testing.T) {
	_, built, diags := resolveSource(t, "app\napp: { x: 1 }", 1)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	m := built.Metas[0]
	if !m.Elem.IsValid() || built.Tree.Elem(m.Elem).Name != "app" {
		t.Error("metadata target bound to the wrong element")
	}
}

func TestResolveBothEndpointsReported(t *testing.T) {
	_, _, diags := resolveSource(t, "ghost -> phantom", 1)
	if len(diags) != 2 {
		t.Fatalf("both endpoints must be diagnosed independently: %v", diags)
	}
}

func TestResolveOrderIndependence(t *testing.T) {
	// same declarations, statements permuted: identical resolution results
	a := "a\nb\na -> b\nC { d }"
	b := "C { d }\na -> b\nb\na"
	_, builtA, diagsA := resolveSource(t, a, 1)
	_, builtB, diagsB := resolveSource(t, b, 1)
	if len(diagsA) != 0 || len(diagsB) != 0 {
		t.Fatalf("unexpected diagnostics: %v / %v", diagsA, diagsB)
	}
	pathA := builtA.Tree.ElemPath(builtA.Edges[0].To)
	pathB := builtB.Tree.ElemPath(builtB.Edges[0].To)
	if pathA != pathB {
		t.Errorf("permutation changed resolution: %q vs %q", pathA, pathB)
	}
}

func TestResolveParallelMatchesSequential(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Frontend { app\nweb }\nBackend { api\ndb :store }\n")
	sb.WriteString("Frontend.app -> Backend.api\n")
	sb.WriteString("Frontend.web -> Backend.ref(store)\n")
	sb.WriteString("ghost -> Backend.api\n")
	sb.WriteString("Frontend.app -> Backend.missing\n")
	sb.WriteString("Backend.api: { x: 1 }\n")
	input := sb.String()

	_, _, seq := resolveSource(t, input, 1)
	for run := 0; run < 4; run++ {
		_, _, par := resolveSource(t, input, 8)
		if len(par) != len(seq) {
			t.Fatalf("run %d: got %d diagnostics, want %d", run, len(par), len(seq))
		}
		for i := range seq {
			if par[i].Message != seq[i].Message || par[i].Primary != seq[i].Primary {
				t.Fatalf("run %d: diagnostic %d differs: %v vs %v", run, i, par[i], seq[i])
			}
		}
	}
}

func TestResolvePanicsOnUnfrozenTree(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ramen", []byte("a\nb\na -> b")))
	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: reporter}), builder, parser.Options{Reporter: reporter})
	built := scope.Build(builder, res.File, reporter)

	defer func() {
		if recover() == nil {
			t.Fatal("resolving an unfrozen tree must panic")
		}
	}()
	resolve.All(context.Background(), builder, built, 1)
}
