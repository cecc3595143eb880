package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// typeIdentifier implements pass.Mutator, stubbing out container template
// parameters the catalog marks as uninteresting (allocators, comparators,
// hashers) with a size/align-preserving Dummy or DummyAllocator node.
type typeIdentifier struct {
	*pass.RecursiveMutator
	g   *graph.TypeGraph
	err error
}

// NewTypeIdentifier returns the TypeIdentifier pass.
func NewTypeIdentifier() pass.Pass {
	return pass.Pass{Name: "TypeIdentifier", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		ti := &typeIdentifier{g: g}
		ti.RecursiveMutator = pass.NewRecursiveMutator(ti)
		for _, root := range g.Roots() {
			ti.Mutate(root)
			if ti.err != nil {
				return ti.err
			}
		}
		return nil
	}}
}

func (ti *typeIdentifier) MutateContainer(c *graph.Container) graph.Node {
	info, _ := c.Info.(*catalog.ContainerInfo)
	for i := range c.TemplateParams {
		tp := &c.TemplateParams[i]
		if !tp.IsType() {
			continue
		}
		if info != nil && info.StubsParam(i) {
			replacement, err := ti.stub(tp.Type, c)
			if err != nil {
				ti.err = err
				return c
			}
			tp.Type = replacement
			continue
		}
		tp.Type = ti.Mutate(tp.Type)
	}
	return c
}

func (ti *typeIdentifier) stub(paramType graph.Node, container *graph.Container) (graph.Node, error) {
	size := dummySize(paramType.Size())
	align := paramType.Align()
	if underlying, ok := stripTypedefs(paramType).(*graph.Class); ok && underlying.HasAllocateFunc() {
		inner := firstTypeParam(underlying)
		if inner == nil {
			inner = firstTypeParam(container)
		}
		return ti.g.MakeDummyAllocator(inner, size, align)
	}
	return ti.g.MakeDummy(size, align)
}

func firstTypeParam(n graph.Node) graph.Node {
	var params []graph.TemplateParam
	switch t := n.(type) {
	case *graph.Class:
		params = t.TemplateParams
	case *graph.Container:
		params = t.TemplateParams
	}
	for _, p := range params {
		if p.IsType() {
			return p.Type
		}
	}
	return nil
}
