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

// TestFlattenDiamond is seed scenario S1: class C{int c;};
// class B:C{int b;}; class A:B,C{int a;} flattens to A's members
// [c@0, b@4, c@8, a@12] with size 16.
func TestFlattenDiamond(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)

	c, err := g.MakeClass(graph.ClassKindClass, "C", "C", 4)
	require.NoError(t, err)
	c.Members = []graph.Member{{Type: i32, Name: "c", BitOffset: 0}}

	b, err := g.MakeClass(graph.ClassKindClass, "B", "B", 8)
	require.NoError(t, err)
	b.Parents = []graph.Parent{{Type: c, BitOffset: 0}}
	b.Members = []graph.Member{{Type: i32, Name: "b", BitOffset: 32}}

	a, err := g.MakeClass(graph.ClassKindClass, "A", "A", 16)
	require.NoError(t, err)
	a.Parents = []graph.Parent{
		{Type: b, BitOffset: 0},
		{Type: c, BitOffset: 64},
	}
	a.Members = []graph.Member{{Type: i32, Name: "a", BitOffset: 96}}
	g.AddRoot(a)

	require.NoError(t, NewFlatten().Run(context.Background(), g))

	require.Empty(t, a.Parents)
	require.Len(t, a.Members, 4)
	names := []string{"c", "b", "c", "a"}
	offsets := []uint64{0, 32, 64, 96}
	for i, m := range a.Members {
		require.Equal(t, names[i], m.Name)
		require.Equal(t, offsets[i], m.BitOffset)
	}
}

// TestFlattenPropertyNoParentsAndSortedOffsets validates property
// 2: every Class reachable post-Flatten has empty Parents and members
// sorted strictly by bit offset, for randomly generated linear inheritance
// chains of varying depth.
func TestFlattenPropertyNoParentsAndSortedOffsets(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("Flatten clears Parents and keeps members sorted", prop.ForAll(
		func(depth int) bool {
			g := graph.NewTypeGraph(0)
			i32, err := g.MakePrimitive(graph.Int32)
			if err != nil {
				return false
			}

			var prev *graph.Class
			for i := 0; i < depth; i++ {
				cls, err := g.MakeClass(graph.ClassKindStruct, "L", "L", uint64(4*(i+1)))
				if err != nil {
					return false
				}
				cls.Members = []graph.Member{{Type: i32, Name: "f", BitOffset: 0}}
				if prev != nil {
					cls.Parents = []graph.Parent{{Type: prev, BitOffset: uint64(32 * i)}}
				}
				prev = cls
			}
			if prev == nil {
				return true
			}
			g.AddRoot(prev)

			if err := NewFlatten().Run(context.Background(), g); err != nil {
				return false
			}

			for _, n := range g.Nodes() {
				cls, ok := n.(*graph.Class)
				if !ok {
					continue
				}
				if len(cls.Parents) != 0 {
					return false
				}
				for i := 1; i < len(cls.Members); i++ {
					if cls.Members[i].BitOffset <= cls.Members[i-1].BitOffset {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 8),
	))

	properties.TestingRun(t)
}
