package transform

import (
	"context"
	"sort"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// flattener implements pass.Mutator, inlining base-class members into their
// derived class so downstream passes never need to reason about
// inheritance. It recurses bottom-up (a parent is fully flattened before its
// members are copied into the child) via pass.RecursiveMutator's memoized
// dispatch, which also guarantees a diamond-shaped base is flattened exactly
// once and the result shared.
type flattener struct {
	*pass.RecursiveMutator
}

// NewFlatten returns the Flatten pass: inline parents'
// members into each Class, clearing Parents once done.
func NewFlatten() pass.Pass {
	return pass.Pass{Name: "Flatten", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		f := &flattener{}
		f.RecursiveMutator = pass.NewRecursiveMutator(f)
		for _, root := range g.Roots() {
			f.Mutate(root)
		}
		return nil
	}}
}

func (f *flattener) MutateClass(c *graph.Class) graph.Node {
	for i := range c.TemplateParams {
		if c.TemplateParams[i].IsType() {
			c.TemplateParams[i].Type = f.Mutate(c.TemplateParams[i].Type)
		}
	}
	for i := range c.Members {
		c.Members[i].Type = f.Mutate(c.Members[i].Type)
	}
	for i := range c.Parents {
		c.Parents[i].Type = f.Mutate(c.Parents[i].Type)
	}

	if len(c.Parents) > 0 && c.HasAllocateFunc() && len(c.TemplateParams) == 0 {
		if firstParent, ok := c.Parents[0].Type.(*graph.Class); ok && len(firstParent.TemplateParams) > 0 {
			c.TemplateParams = append(c.TemplateParams, firstParent.TemplateParams[0])
		}
	}

	if c.IsUnion() || len(c.Parents) == 0 {
		c.Parents = nil
		return c
	}

	ownMembers := c.Members
	var inlined []graph.Member
	for _, p := range c.Parents {
		switch parent := p.Type.(type) {
		case *graph.Class:
			for i, m := range parent.Members {
				nm := m
				nm.BitOffset = p.BitOffset + m.BitOffset
				if i == 0 {
					parentAlign := parent.Align()
					if parentAlign == 0 {
						parentAlign = 1
					}
					ownAlign := nm.ExplicitAlign
					if ownAlign == 0 {
						ownAlign = nm.Type.Align()
					}
					if parentAlign > ownAlign {
						nm.ExplicitAlign = parentAlign
					}
				}
				inlined = append(inlined, nm)
			}
			c.Functions = append(c.Functions, parent.Functions...)
		default:
			inlined = append(inlined, graph.Member{
				Type:      p.Type,
				Name:      "__oi_parent",
				BitOffset: p.BitOffset,
			})
		}
	}
	c.Members = append(inlined, ownMembers...)
	sort.SliceStable(c.Members, func(i, j int) bool {
		return c.Members[i].BitOffset < c.Members[j].BitOffset
	})
	c.Parents = nil
	return c
}
