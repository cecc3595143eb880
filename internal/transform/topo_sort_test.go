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

func indexOf(types []graph.Node, n graph.Node) int {
	for i, t := range types {
		if t.ID() == n.ID() {
			return i
		}
	}
	return -1
}

// TestTopoSortSucceedsThroughCycleBreaker continues S3: after
// CycleFinder replaces N*'s pointee with a CycleBreaker, TopoSort succeeds
// (the only remaining path from N back to itself is the deferred
// CycleBreaker edge, not a strong one).
func TestTopoSortSucceedsThroughCycleBreaker(t *testing.T) {
	g := graph.NewTypeGraph(0)
	i32, err := g.MakePrimitive(graph.Int32)
	require.NoError(t, err)
	n, err := g.MakeClass(graph.ClassKindStruct, "N", "N", 16)
	require.NoError(t, err)
	ptr, err := g.MakePointer(n)
	require.NoError(t, err)
	n.Members = []graph.Member{
		{Type: i32, Name: "value", BitOffset: 0},
		{Type: ptr, Name: "next", BitOffset: 64},
	}
	g.AddRoot(n)

	require.NoError(t, NewCycleFinder().Run(context.Background(), g))
	require.NoError(t, NewTopoSort().Run(context.Background(), g))

	require.NotEmpty(t, g.FinalTypes)
	require.Less(t, indexOf(g.FinalTypes, i32), indexOf(g.FinalTypes, n))
}

// TestTopoSortPropertyStrongEdgesPrecede validates property 7:
// for every strong edge u -> v (here: Class member edges) in the
// post-sort graph, index(v) < index(u) in final_types, across randomly
// generated linear chains of member types.
func TestTopoSortPropertyStrongEdgesPrecede(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("strong member edges precede their owner", prop.ForAll(
		func(depth int) bool {
			g := graph.NewTypeGraph(0)
			i32, err := g.MakePrimitive(graph.Int32)
			if err != nil {
				return false
			}
			var prev graph.Node = i32
			var classes []*graph.Class
			for i := 0; i < depth; i++ {
				cls, err := g.MakeClass(graph.ClassKindStruct, "L", "L", 4)
				if err != nil {
					return false
				}
				cls.Members = []graph.Member{{Type: prev, Name: "inner", BitOffset: 0}}
				classes = append(classes, cls)
				prev = cls
			}
			if len(classes) == 0 {
				return true
			}
			g.AddRoot(classes[len(classes)-1])

			if err := NewTopoSort().Run(context.Background(), g); err != nil {
				return false
			}

			for _, cls := range classes {
				for _, m := range cls.Members {
					if indexOf(g.FinalTypes, m.Type) >= indexOf(g.FinalTypes, cls) {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(0, 10),
	))

	properties.TestingRun(t)
}
