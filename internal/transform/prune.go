package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// pruner implements graph.Visitor, dropping graph state the emitter never
// reads once the pipeline has reached its final shape: template parameters,
// (already-empty) parents, functions, and a Container's Underlying back
// pointer.
type pruner struct {
	*pass.RecursiveVisitor
}

// NewPrune returns the Prune pass, the last of the ten
// standard passes.
func NewPrune() pass.Pass {
	return pass.Pass{Name: "Prune", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		p := &pruner{}
		p.RecursiveVisitor = pass.NewRecursiveVisitor(p)
		for _, root := range g.Roots() {
			root.Accept(p)
		}
		return nil
	}}
}

func (p *pruner) VisitClass(c *graph.Class) {
	if p.Tracker.Visit(c) {
		return
	}
	for _, m := range c.Members {
		if m.Type != nil {
			m.Type.Accept(p.Self)
		}
	}
	for _, ch := range c.Children {
		if ch.Type != nil {
			ch.Type.Accept(p.Self)
		}
	}
	c.TemplateParams = nil
	c.Parents = nil
	c.Functions = nil
}

func (p *pruner) VisitContainer(c *graph.Container) {
	if p.Tracker.Visit(c) {
		return
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(p.Self)
		}
	}
	c.Underlying = nil
}
