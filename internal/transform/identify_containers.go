package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// containerIdentifier implements pass.Mutator, replacing any Class whose
// fully-qualified name matches a catalog entry with a Container node. The
// underlying RecursiveMutator memoizes the substitution so every reference
// to the same Class ends up pointing at the same new Container.
type containerIdentifier struct {
	*pass.RecursiveMutator
	g   *graph.TypeGraph
	cat *catalog.Catalog
	err error
}

// NewIdentifyContainers returns the IdentifyContainers pass.
func NewIdentifyContainers(cat *catalog.Catalog) pass.Pass {
	return pass.Pass{Name: "IdentifyContainers", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		ci := &containerIdentifier{g: g, cat: cat}
		ci.RecursiveMutator = pass.NewRecursiveMutator(ci)
		newRoots := make([]graph.Node, len(g.Roots()))
		for i, root := range g.Roots() {
			newRoots[i] = ci.Mutate(root)
			if ci.err != nil {
				return ci.err
			}
		}
		g.ReplaceRoots(newRoots)
		return nil
	}}
}

func (ci *containerIdentifier) MutateClass(c *graph.Class) graph.Node {
	for i := range c.TemplateParams {
		if c.TemplateParams[i].IsType() {
			c.TemplateParams[i].Type = ci.Mutate(c.TemplateParams[i].Type)
		}
	}
	for i := range c.Members {
		c.Members[i].Type = ci.Mutate(c.Members[i].Type)
	}
	for i := range c.Parents {
		c.Parents[i].Type = ci.Mutate(c.Parents[i].Type)
	}

	info, ok := ci.cat.Match(c.FullyQualifiedName)
	if !ok {
		return c
	}
	cont, err := ci.g.MakeContainer(c.Name())
	if err != nil {
		ci.err = err
		return c
	}
	cont.Info = info
	cont.TemplateParams = c.TemplateParams
	cont.SetSize(c.Size())
	cont.Underlying = c
	return cont
}
