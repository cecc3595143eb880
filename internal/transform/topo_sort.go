package transform

import (
	"context"
	"fmt"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// topoSorter implements TopoSort: a DFS from each root that
// pushes strong dependencies before pushing the node itself (standard
// postorder topological sort), and separately enqueues deferred edges
// (Pointer/Reference pointee, Class children, CycleBreaker target) to be
// walked only once the current subtree is done, so they never block
// ordering.
type topoSorter struct {
	visited  map[graph.NodeID]bool
	onStack  map[graph.NodeID]bool
	order    []graph.Node
	deferred []graph.Node
}

// NewTopoSort returns the TopoSort pass. It populates
// g.FinalTypes with a deterministic dependency order: for every strong
// edge u -> v, index(v) < index(u).
func NewTopoSort() pass.Pass {
	return pass.Pass{Name: "TopoSort", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		ts := &topoSorter{
			visited: make(map[graph.NodeID]bool),
			onStack: make(map[graph.NodeID]bool),
		}
		for _, root := range g.Roots() {
			if err := ts.visitStrong(root); err != nil {
				return err
			}
		}
		for i := 0; i < len(ts.deferred); i++ {
			if err := ts.visitStrong(ts.deferred[i]); err != nil {
				return err
			}
		}
		g.FinalTypes = ts.order
		return nil
	}}
}

func (ts *topoSorter) visitStrong(n graph.Node) error {
	if n == nil {
		return nil
	}
	id := n.ID()
	if ts.visited[id] {
		return nil
	}
	if ts.onStack[id] {
		return fmt.Errorf("%w: strong-edge cycle through %q (CycleFinder should have broken it)", ErrBadGraph, n.Name())
	}
	ts.onStack[id] = true

	switch t := n.(type) {
	case *graph.Class:
		for _, p := range t.Parents {
			if err := ts.visitStrong(p.Type); err != nil {
				return err
			}
		}
		for _, m := range t.Members {
			if err := ts.visitStrong(m.Type); err != nil {
				return err
			}
		}
		for _, tp := range t.TemplateParams {
			if tp.IsType() {
				if err := ts.visitStrong(tp.Type); err != nil {
					return err
				}
			}
		}
		for _, c := range t.Children {
			ts.enqueueDeferred(c.Type)
		}
	case *graph.Container:
		for _, tp := range t.TemplateParams {
			if tp.IsType() {
				if err := ts.visitStrong(tp.Type); err != nil {
					return err
				}
			}
		}
	case *graph.Array:
		if err := ts.visitStrong(t.Element); err != nil {
			return err
		}
	case *graph.Typedef:
		if err := ts.visitStrong(t.Underlying); err != nil {
			return err
		}
	case *graph.Pointer:
		ts.enqueueDeferred(t.Pointee)
	case *graph.Reference:
		ts.enqueueDeferred(t.Pointee)
	case *graph.CaptureKeys:
		if err := ts.visitStrong(t.Inner); err != nil {
			return err
		}
	case *graph.CycleBreaker:
		ts.enqueueDeferred(t.Target)
	}

	delete(ts.onStack, id)
	ts.visited[id] = true
	ts.order = append(ts.order, n)
	return nil
}

func (ts *topoSorter) enqueueDeferred(n graph.Node) {
	if n == nil || ts.visited[n.ID()] {
		return
	}
	ts.deferred = append(ts.deferred, n)
}
