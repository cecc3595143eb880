package transform

import (
	"context"
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestAddPaddingInsertsGapAndTrailer(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)

	// struct { int32 a at offset 0; int32 b at offset 64 (bits); size 16 } --
	// leaves a 4-byte gap between a and b, and a 4-byte trailer.
	c, err := g.MakeClass(graph.ClassKindStruct, "Gappy", "Gappy", 16)
	require.NoError(t, err)
	c.Members = []graph.Member{
		{Type: i32, Name: "a", BitOffset: 0},
		{Type: i32, Name: "b", BitOffset: 64},
	}
	g.AddRoot(c)

	require.NoError(t, NewAddPadding().Run(context.Background(), g))

	require.Len(t, c.Members, 4)
	require.Equal(t, "a", c.Members[0].Name)
	require.True(t, IsPaddingMember(c.Members[1]))
	require.Equal(t, uint64(32), c.Members[1].BitOffset)
	require.Equal(t, "b", c.Members[2].Name)
	require.True(t, IsPaddingMember(c.Members[3]))
	require.Equal(t, uint64(96), c.Members[3].BitOffset)
}

func TestAddPaddingSkipsUnions(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)
	u, err := g.MakeClass(graph.ClassKindUnion, "U", "U", 4)
	require.NoError(t, err)
	u.Members = []graph.Member{{Type: i32, Name: "a", BitOffset: 0}}
	g.AddRoot(u)

	require.NoError(t, NewAddPadding().Run(context.Background(), g))
	require.Len(t, u.Members, 1)
}

func TestAddPaddingBitfieldRemainder(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)
	c, err := g.MakeClass(graph.ClassKindStruct, "Bits", "Bits", 4)
	require.NoError(t, err)
	c.Members = []graph.Member{
		{Type: i32, Name: "flag", BitOffset: 0, BitSize: 3},
	}
	g.AddRoot(c)

	require.NoError(t, NewAddPadding().Run(context.Background(), g))
	require.Len(t, c.Members, 2)
	pad := c.Members[1]
	require.True(t, IsPaddingMember(pad))
	require.Equal(t, uint64(3), pad.BitOffset)
	require.Equal(t, uint64(29), pad.BitSize)
}
