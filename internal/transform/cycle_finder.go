package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// edgeKind classifies an outgoing edge for CycleFinder's break-preference
// order ("Preferred edges to break, in order: Pointer.pointee,
// Container.template_param").
type edgeKind int

const (
	edgeOther edgeKind = iota
	edgePointerPointee
	edgeContainerParam
)

// cycleEdge is one outgoing edge discovered during the DFS: what it points
// at, how preferred it is to sever, and how to rewrite it in place once a
// CycleBreaker has been chosen.
type cycleEdge struct {
	kind   edgeKind
	target graph.Node
	sever  func(graph.Node)
}

// cycleFinder is CycleFinder's DFS state. Unlike the Visitor/Mutator
// disciplines, it needs an explicit on_stack set (to detect the closing
// edge of a cycle) and an edge stack (to find the preferred edge to sever
// anywhere along the cycle, not just the edge that happened to close it),
// so it walks the graph directly rather than through RecursiveVisitor.
type cycleFinder struct {
	g *graph.TypeGraph

	onStack  map[graph.NodeID]int // node id -> index into path/edges once pushed
	visited  map[graph.NodeID]bool
	nameByID map[graph.NodeID]string
	path     []graph.NodeID
	edges    []cycleEdge // edges[i] connects path[i] to path[i+1]
}

// NewCycleFinder returns the CycleFinder pass.
func NewCycleFinder() pass.Pass {
	return pass.Pass{Name: "CycleFinder", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		cf := &cycleFinder{
			g:        g,
			onStack:  make(map[graph.NodeID]int),
			visited:  make(map[graph.NodeID]bool),
			nameByID: make(map[graph.NodeID]string),
		}
		for _, root := range g.Roots() {
			if err := cf.visit(root); err != nil {
				return err
			}
		}
		return nil
	}}
}

func (cf *cycleFinder) visit(n graph.Node) error {
	if n == nil {
		return nil
	}
	id := n.ID()
	if cf.visited[id] {
		return nil
	}
	if _, onStack := cf.onStack[id]; onStack {
		return cf.breakCycle(id)
	}

	cf.onStack[id] = len(cf.path)
	cf.nameByID[id] = n.Name()
	cf.path = append(cf.path, id)

	edges := cf.outgoingEdges(n)
	for _, e := range edges {
		if e.target == nil {
			continue
		}
		cf.edges = append(cf.edges, e)
		if err := cf.visit(e.target); err != nil {
			return err
		}
		cf.edges = cf.edges[:len(cf.edges)-1]
	}

	cf.path = cf.path[:len(cf.path)-1]
	delete(cf.onStack, id)
	cf.visited[id] = true
	return nil
}

func (cf *cycleFinder) outgoingEdges(n graph.Node) []cycleEdge {
	var edges []cycleEdge
	switch t := n.(type) {
	case *graph.Class:
		for i := range t.Parents {
			p := &t.Parents[i]
			edges = append(edges, cycleEdge{kind: edgeOther, target: p.Type, sever: func(b graph.Node) { p.Type = b }})
		}
		for i := range t.Members {
			m := &t.Members[i]
			edges = append(edges, cycleEdge{kind: edgeOther, target: m.Type, sever: func(b graph.Node) { m.Type = b }})
		}
		for i := range t.TemplateParams {
			tp := &t.TemplateParams[i]
			if tp.IsType() {
				edges = append(edges, cycleEdge{kind: edgeOther, target: tp.Type, sever: func(b graph.Node) { tp.Type = b }})
			}
		}
		for i := range t.Children {
			c := &t.Children[i]
			edges = append(edges, cycleEdge{kind: edgeOther, target: c.Type, sever: func(b graph.Node) {
				if cls, ok := b.(*graph.Class); ok {
					c.Type = cls
				}
			}})
		}
	case *graph.Container:
		for i := range t.TemplateParams {
			tp := &t.TemplateParams[i]
			if tp.IsType() {
				edges = append(edges, cycleEdge{kind: edgeContainerParam, target: tp.Type, sever: func(b graph.Node) { tp.Type = b }})
			}
		}
	case *graph.Array:
		edges = append(edges, cycleEdge{kind: edgeOther, target: t.Element, sever: func(b graph.Node) { t.Element = b }})
	case *graph.Typedef:
		edges = append(edges, cycleEdge{kind: edgeOther, target: t.Underlying, sever: func(b graph.Node) { t.Underlying = b }})
	case *graph.Pointer:
		edges = append(edges, cycleEdge{kind: edgePointerPointee, target: t.Pointee, sever: func(b graph.Node) { t.Pointee = b }})
	case *graph.Reference:
		edges = append(edges, cycleEdge{kind: edgeOther, target: t.Pointee, sever: func(b graph.Node) { t.Pointee = b }})
	case *graph.CaptureKeys:
		edges = append(edges, cycleEdge{kind: edgeOther, target: t.Inner, sever: func(b graph.Node) { t.Inner = b }})
	}
	return edges
}

// breakCycle fires when the DFS is about to step onto a node already on the
// stack: path[j:] (j = that node's stack index) plus the just-appended
// closing edge form the cycle. It severs the first preferred edge found in
// that span, preferring Pointer.pointee over Container.template_param.
func (cf *cycleFinder) breakCycle(targetID graph.NodeID) error {
	j, ok := cf.onStack[targetID]
	if !ok {
		return fmt.Errorf("%w: cycle target not on stack", ErrBadGraph)
	}
	cycleEdges := cf.edges[j:]

	for _, e := range cycleEdges {
		if e.kind == edgePointerPointee {
			return cf.sever(e)
		}
	}
	for _, e := range cycleEdges {
		if e.kind == edgeContainerParam {
			return cf.sever(e)
		}
	}

	names := make([]string, 0, len(cf.path)-j+1)
	for _, id := range cf.path[j:] {
		names = append(names, cf.nameByID[id])
	}
	names = append(names, cf.nameByID[targetID])
	return fmt.Errorf("%w: %s", ErrUnbreakableCycle, strings.Join(names, " -> "))
}

func (cf *cycleFinder) sever(e cycleEdge) error {
	breaker, err := cf.g.MakeCycleBreaker(e.target)
	if err != nil {
		return err
	}
	e.sever(breaker)
	return nil
}
