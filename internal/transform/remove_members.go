package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// memberRemover drops ignored, union, and Incomplete-typed members. It
// reimplements VisitClass's recursion (rather than relying on
// RecursiveVisitor's default) because it needs a post-recursion hook to
// filter the class's own Members slice once every child has been visited.
type memberRemover struct {
	*pass.RecursiveVisitor
	ignore *IgnoreList
}

// NewRemoveMembers returns the RemoveMembers pass.
func NewRemoveMembers(ignore *IgnoreList) pass.Pass {
	return pass.Pass{Name: "RemoveMembers", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		r := &memberRemover{ignore: ignore}
		r.RecursiveVisitor = pass.NewRecursiveVisitor(r)
		for _, root := range g.Roots() {
			root.Accept(r)
		}
		return nil
	}}
}

func (r *memberRemover) VisitClass(c *graph.Class) {
	if r.Tracker.Visit(c) {
		return
	}
	for _, p := range c.Parents {
		if p.Type != nil {
			p.Type.Accept(r.Self)
		}
	}
	for _, m := range c.Members {
		if m.Type != nil {
			m.Type.Accept(r.Self)
		}
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(r.Self)
		}
	}

	if c.IsUnion() {
		c.Members = nil
		return
	}
	kept := make([]graph.Member, 0, len(c.Members))
	for _, m := range c.Members {
		if _, incomplete := m.Type.(*graph.Incomplete); incomplete {
			continue
		}
		if r.ignore.Matches(c.ClassName, m.Name) {
			continue
		}
		kept = append(kept, m)
	}
	c.Members = kept
}
