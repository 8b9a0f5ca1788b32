package meta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ramen/ast"
	"ramen/diag"
	"ramen/lexer"
	"ramen/meta"
	"ramen/parser"
	"ramen/resolve"
	"ramen/scope"
	"ramen/source"
)

func bindSource(t *testing.T, input string) (*scope.BuildResult, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ramen", []byte(input)))

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	builder := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: reporter}), builder, parser.Options{Reporter: reporter})

	built := scope.Build(builder, res.File, reporter)
	built.Tree.Freeze()
	for _, d := range resolve.All(context.Background(), builder, built, 1) {
		bag.Add(d)
	}

	meta.Bind(builder, built, reporter)
	return built, bag
}

func props(t *testing.T, built *scope.BuildResult, name string) *scope.PropSet {
	t.Helper()
	entry, ok := built.Tree.LookupName(built.Tree.Root(), name)
	require.True(t, ok, "element %q must exist", name)
	return built.Tree.Elem(entry.Elem).Props
}

func TestBindAttachesProperties(t *testing.T) {
	built, bag := bindSource(t, "app\napp: { color: \"red\"\nx: 10\ny: 20 }")
	require.False(t, bag.HasWarnings(), "items: %v", bag.Items())

	ps := props(t, built, "app")
	require.NotNil(t, ps)
	require.Equal(t, []string{"color", "x", "y"}, ps.Keys())

	color, ok := ps.Get("color")
	require.True(t, ok)
	require.Equal(t, ast.PropString, color.Kind)
	require.Equal(t, "red", color.Str)

	x, ok := ps.Get("x")
	require.True(t, ok)
	require.Equal(t, ast.PropNumber, x.Kind)
	require.Equal(t, 10.0, x.Num)
}

func TestBindLastWriteWins(t *testing.T) {
	built, bag := bindSource(t, "app\napp: { color: \"red\" }\napp: { color: \"blue\" }")
	require.False(t, bag.HasWarnings())

	color, ok := props(t, built, "app").Get("color")
	require.True(t, ok)
	require.Equal(t, "blue", color.Str)
}

func TestBindMergesAcrossDeclarations(t *testing.T) {
	built, bag := bindSource(t, "app\napp: { x: 1 }\napp: { y: 2 }")
	require.False(t, bag.HasWarnings())

	ps := props(t, built, "app")
	require.Equal(t, 2, ps.Len())
	require.Equal(t, []string{"x", "y"}, ps.Keys())
}

func TestBindUnrecognizedKeyWarnsAndStores(t *testing.T) {
	built, bag := bindSource(t, "app\napp: { sparkle: \"yes\" }")
	items := bag.Items()
	require.Len(t, items, 1)
	require.Equal(t, diag.MetaUnrecognizedKey, items[0].Code)
	require.Equal(t, diag.SevWarning, items[0].Severity)

	val, ok := props(t, built, "app").Get("sparkle")
	require.True(t, ok, "unrecognized keys are still stored")
	require.Equal(t, "yes", val.Str)
}

func TestBindAppliesTo(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"layout on node", "app\napp: { layout: \"grid\" }"},
		{"x on container", "Box { a }\nBox: { x: 5 }"},
		{"shape on container", "Box { a }\nBox: { shape: \"circle\" }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := bindSource(t, tt.input)
			items := bag.Items()
			require.Len(t, items, 1)
			require.Equal(t, diag.MetaInvalidPropertyValue, items[0].Code)
			require.Equal(t, diag.SevError, items[0].Severity)
		})
	}
}

func TestBindValueKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		bad   bool
	}{
		{"enum ok", "Box { a }\nBox: { layout: \"grid\" }", false},
		{"enum bad member", "Box { a }\nBox: { layout: \"spiral\" }", true},
		{"enum wrong kind", "app\napp: { shape: 3 }", true},
		{"number ok", "app\napp: { x: 1.5 }", false},
		{"number bad", "app\napp: { x: \"left\" }", true},
		{"content single line", "app\napp: { content: \"hi\" }", false},
		{"content multiline", "app\napp: { content: \\\"a\nb\"\\ }", false},
		{"string bad", "app\napp: { color: 7 }", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag := bindSource(t, tt.input)
			if tt.bad {
				require.True(t, bag.HasErrors(), "items: %v", bag.Items())
				require.Equal(t, diag.MetaInvalidPropertyValue, bag.Items()[0].Code)
			} else {
				require.False(t, bag.HasWarnings(), "items: %v", bag.Items())
			}
		})
	}
}

func TestBindRejectedValueNotStored(t *testing.T) {
	built, _ := bindSource(t, "app\napp: { x: \"left\" }")
	ps := props(t, built, "app")
	_, ok := ps.Get("x")
	require.False(t, ok, "a rejected value must not land in the property map")
}

func TestBindSkipsUnresolvedTargets(t *testing.T) {
	_, bag := bindSource(t, "app\nghost: { x: 1 }")
	items := bag.Items()
	require.Len(t, items, 1, "only the resolver error, no binder follow-on")
	require.Equal(t, diag.RefUnresolved, items[0].Code)
}

func TestBindDeepTarget(t *testing.T) {
	built, bag := bindSource(t, "Frontend { app }\nFrontend.app: { shape: \"diamond\" }")
	require.False(t, bag.HasWarnings())

	entry, _ := built.Tree.LookupName(built.Tree.Root(), "Frontend")
	child := built.Tree.Elem(entry.Elem).Child
	appEntry, ok := built.Tree.LookupName(child, "app")
	require.True(t, ok)
	shape, ok := built.Tree.Elem(appEntry.Elem).Props.Get("shape")
	require.True(t, ok)
	require.Equal(t, "diamond", shape.Str)
}
