package emitter

import (
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
	"github.com/stretchr/testify/require"
)

// TestVectorIntWireShape is seed scenario S4: a
// Container std::vector<int, Alloc> (Alloc already stubbed) has a wire
// shape of Pair(VarInt, List(VarInt)) — a leading capacity VarInt followed
// by a length-prefixed repetition of the element's VarInt shape.
func TestVectorIntWireShape(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)

	vec, err := g.MakeContainer("std::vector<int32_t>")
	require.NoError(t, err)
	vec.Info = &catalog.ContainerInfo{TypeName: "std::vector"}
	vec.TemplateParams = []graph.TemplateParam{{Type: i32}}
	vec.SetSize(24)
	g.AddRoot(vec)

	e := New(Options{Mode: ModeTyped})
	got := e.wireTypeOf(vec)

	want := wiretype.PairType(wiretype.VarIntType(), wiretype.ListType(wiretype.VarIntType()))
	require.True(t, got.Equal(want), "got %+v, want %+v", got, want)
}

// TestClassHandlerFoldsMembersRightAssociated validates property
// 8 (isomorphism between a handler's emitted st shape and its dy tree) for
// the common case: a non-empty Class's handler type is a right-folded Pair
// of its non-padding members' wire types, matching wiretype.Fold directly.
func TestClassHandlerFoldsMembersRightAssociated(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)
	i64, err := g.MakePrimitive(graph.Int64)
	require.NoError(t, err)

	c, err := g.MakeClass(graph.ClassKindStruct, "Pair2", "Pair2", 16)
	require.NoError(t, err)
	c.Members = []graph.Member{
		{Type: i32, Name: "a", BitOffset: 0},
		{Type: i64, Name: "b", BitOffset: 64},
	}
	g.AddRoot(c)

	e := New(Options{Mode: ModeTyped})
	got := e.wireTypeOf(c)
	want := wiretype.PairType(wiretype.VarIntType(), wiretype.VarIntType())
	require.True(t, got.Equal(want))
}

// TestEmptyClassCollapsesToUnit validates "empty classes
// collapse to Unit<DB>" rule.
func TestEmptyClassCollapsesToUnit(t *testing.T) {
	g := graph.NewTypeGraph(0)
	c, err := g.MakeClass(graph.ClassKindStruct, "Empty", "Empty", 1)
	require.NoError(t, err)
	g.AddRoot(c)

	e := New(Options{Mode: ModeTyped})
	got := e.wireTypeOf(c)
	require.True(t, got.Equal(wiretype.Unit()))
}
