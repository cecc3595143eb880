package emitter

import (
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/codegen/testhelpers"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/stretchr/testify/require"
)

// TestBuildClassDeclGolden renders a plain two-member struct and compares it
// against a checked-in fixture, catching accidental formatting drift in the
// class_decl template independent of the handler/wrapper machinery.
func TestBuildClassDeclGolden(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)
	point, err := g.MakeClass(graph.ClassKindStruct, "Point", "Point", 8)
	require.NoError(t, err)
	point.Members = []graph.Member{
		{Type: i32, Name: "x", BitOffset: 0},
		{Type: i32, Name: "y", BitOffset: 32},
	}

	e := New(Options{Mode: ModeUntyped})
	got, err := e.buildClassDecl(point)
	require.NoError(t, err)

	testhelpers.AssertGolden(t, "class_decl", "point.cpp", got)
}
