package transform

import (
	"context"
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestAlignmentCalcAlignsFromWidestMember(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i8, err := g.MakePrimitive(graph.Int8)
	require.NoError(t, err)
	i64, err := g.MakePrimitive(graph.Int64)
	require.NoError(t, err)

	c, err := g.MakeClass(graph.ClassKindStruct, "Mixed", "Mixed", 16)
	require.NoError(t, err)
	c.Members = []graph.Member{
		{Type: i8, Name: "a", BitOffset: 0},
		{Type: i64, Name: "b", BitOffset: 64},
	}
	g.AddRoot(c)

	require.NoError(t, NewAlignmentCalc().Run(context.Background(), g))
	require.Equal(t, uint64(8), c.Align())
	require.False(t, c.Packed)
}

func TestAlignmentCalcPacksWhenSizeNotMultiple(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i64, err := g.MakePrimitive(graph.Int64)
	require.NoError(t, err)

	c, err := g.MakeClass(graph.ClassKindStruct, "Odd", "Odd", 12)
	require.NoError(t, err)
	c.Members = []graph.Member{{Type: i64, Name: "a", BitOffset: 0}}
	g.AddRoot(c)

	require.NoError(t, NewAlignmentCalc().Run(context.Background(), g))
	require.True(t, c.Packed)
}

// TestAlignmentCalcProperty validates property 4: for every Class
// post-AlignmentCalc, size % align == 0 iff !packed, across randomly shaped
// single-member classes.
func TestAlignmentCalcProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	kinds := []graph.PrimitiveKind{graph.Int8, graph.Int16, graph.Int32, graph.Int64}

	properties.Property("size % align == 0 iff !packed", prop.ForAll(
		func(kindIdx int, extra uint64) bool {
			g := graph.NewTypeGraph(0)
			prim, err := g.MakePrimitive(kinds[kindIdx%len(kinds)])
			if err != nil {
				return false
			}
			size := prim.Size() + extra
			c, err := g.MakeClass(graph.ClassKindStruct, "C", "C", size)
			if err != nil {
				return false
			}
			c.Members = []graph.Member{{Type: prim, Name: "m", BitOffset: 0}}
			g.AddRoot(c)

			if err := NewAlignmentCalc().Run(context.Background(), g); err != nil {
				return false
			}
			divides := c.Size()%c.Align() == 0
			return divides == !c.Packed
		},
		gen.IntRange(0, 3),
		gen.UInt64Range(0, 64),
	))

	properties.TestingRun(t)
}
