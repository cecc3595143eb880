package transform

import (
	"context"
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/stretchr/testify/require"
)

// TestCycleFinderBreaksPointerCycle is seed scenario S3:
// struct N{int value; N* next;} — post-CycleFinder the pointee edge is a
// CycleBreaker(N).
func TestCycleFinderBreaksPointerCycle(t *testing.T) {
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

	breaker, ok := ptr.Pointee.(*graph.CycleBreaker)
	require.True(t, ok, "expected pointer pointee to be replaced by a CycleBreaker")
	require.Equal(t, n, breaker.Target)
}

// TestCycleFinderPrefersPointerOverContainerParam verifies the preferred
// break-edge order: when a single cycle's edge span contains both a
// Container template-parameter edge and a Pointer pointee edge, the
// pointer edge is the one severed.
func TestCycleFinderPrefersPointerOverContainerParam(t *testing.T) {
	g := graph.NewTypeGraph(0)
	n, err := g.MakeClass(graph.ClassKindStruct, "N", "N", 16)
	require.NoError(t, err)
	cont, err := g.MakeContainer("Box<N*>")
	require.NoError(t, err)
	ptr, err := g.MakePointer(n)
	require.NoError(t, err)

	// Cycle: N.member -> Box<N*> -> (template param) N* -> (pointee) N.
	cont.TemplateParams = []graph.TemplateParam{{Type: ptr}}
	n.Members = []graph.Member{{Type: cont, Name: "box", BitOffset: 0}}
	g.AddRoot(n)

	require.NoError(t, NewCycleFinder().Run(context.Background(), g))

	_, brokenOnPointer := ptr.Pointee.(*graph.CycleBreaker)
	require.True(t, brokenOnPointer, "expected the pointer edge to be preferred for breaking")
	_, paramStillPointer := cont.TemplateParams[0].Type.(*graph.Pointer)
	require.True(t, paramStillPointer, "container template param should remain untouched, pointing at the (now broken) pointer")
}

func TestCycleFinderUnbreakableCycle(t *testing.T) {
	g := graph.NewTypeGraph(0)
	n, err := g.MakeClass(graph.ClassKindStruct, "N", "N", 4)
	require.NoError(t, err)
	typedef, err := g.MakeTypedef("T", n)
	require.NoError(t, err)
	n.Members = []graph.Member{{Type: typedef, Name: "m", BitOffset: 0}}
	g.AddRoot(n)

	err = NewCycleFinder().Run(context.Background(), g)
	require.ErrorIs(t, err, ErrUnbreakableCycle)
}
