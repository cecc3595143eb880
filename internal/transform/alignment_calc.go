package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// alignmentCalc implements graph.Visitor, computing each Class's alignment
// bottom-up from its members (an explicit override on the member, or the
// member's own type alignment otherwise) and setting Packed when the
// resulting size isn't a multiple of that alignment.
type alignmentCalc struct {
	*pass.RecursiveVisitor
}

// NewAlignmentCalc returns the AlignmentCalc pass.
func NewAlignmentCalc() pass.Pass {
	return pass.Pass{Name: "AlignmentCalc", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		a := &alignmentCalc{}
		a.RecursiveVisitor = pass.NewRecursiveVisitor(a)
		for _, root := range g.Roots() {
			root.Accept(a)
		}
		return nil
	}}
}

func (a *alignmentCalc) VisitClass(c *graph.Class) {
	if a.Tracker.Visit(c) {
		return
	}
	for _, p := range c.Parents {
		if p.Type != nil {
			p.Type.Accept(a.Self)
		}
	}
	for _, m := range c.Members {
		if m.Type != nil {
			m.Type.Accept(a.Self)
		}
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(a.Self)
		}
	}

	align := uint64(1)
	for _, m := range c.Members {
		memberAlign := m.ExplicitAlign
		if memberAlign == 0 {
			memberAlign = m.Type.Align()
		}
		if memberAlign > align {
			align = memberAlign
		}
	}
	c.SetAlign(align)
	if c.Size()%align != 0 {
		c.Packed = true
	}
}
