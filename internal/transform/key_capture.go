package transform

import (
	"context"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// KeyCaptureRequest names one (class, member) site whose container-typed
// member should have its keys captured in addition to its length/identity,
// or, if TopLevel is set, requests key capture on every root.
type KeyCaptureRequest struct {
	Class    string
	Member   string
	TopLevel bool
}

// keyCapture implements pass.Mutator. It lives in package transform rather
// than postprocess (note: the same placement ambiguity exists in
// original_source/oi/type_graph/KeyCapture.cpp, filed under type_graph/
// despite the source description grouping it with post-processors) because, like
// every other pass, it rewrites graph edges rather than post-processing a
// decoded stream.
type keyCapture struct {
	*pass.RecursiveMutator
	g        *graph.TypeGraph
	cat      *catalog.Catalog
	requests []KeyCaptureRequest
}

// NewKeyCapture returns a pass wrapping every Container member matched by
// requests in a graph.CaptureKeys node: for each request it finds the
// matching Class member, and if that member's (typedef-stripped) type is
// a Container, wraps it in a CaptureKeys node that clones the ContainerInfo
// with capture_keys = true and registers the clone in the catalog.
func NewKeyCapture(cat *catalog.Catalog, requests []KeyCaptureRequest) pass.Pass {
	return pass.Pass{Name: "KeyCapture", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		kc := &keyCapture{g: g, cat: cat, requests: requests}
		kc.RecursiveMutator = pass.NewRecursiveMutator(kc)

		topLevel := false
		for _, r := range requests {
			if r.TopLevel {
				topLevel = true
			}
		}

		newRoots := make([]graph.Node, len(g.Roots()))
		for i, root := range g.Roots() {
			newRoots[i] = kc.Mutate(root)
			if topLevel {
				newRoots[i] = kc.wrapIfContainer(newRoots[i])
			}
		}
		g.ReplaceRoots(newRoots)
		return nil
	}}
}

func (kc *keyCapture) matches(className, memberName string) bool {
	for _, r := range kc.requests {
		if r.Class == className && r.Member == memberName {
			return true
		}
	}
	return false
}

func (kc *keyCapture) MutateClass(c *graph.Class) graph.Node {
	for i := range c.Members {
		m := &c.Members[i]
		m.Type = kc.Mutate(m.Type)
		if kc.matches(c.ClassName, m.Name) {
			m.Type = kc.wrapIfContainer(m.Type)
		}
	}
	for i := range c.Parents {
		c.Parents[i].Type = kc.Mutate(c.Parents[i].Type)
	}
	return c
}

// wrapIfContainer wraps n in a CaptureKeys node if (typedef-stripped) n is a
// Container, cloning its ContainerInfo with capture_keys=true into the
// catalog. Non-container types pass through unchanged.
func (kc *keyCapture) wrapIfContainer(n graph.Node) graph.Node {
	container, ok := stripTypedefs(n).(*graph.Container)
	if !ok {
		return n
	}
	info, _ := container.Info.(*catalog.ContainerInfo)
	if info == nil {
		return n
	}
	clone := info.Clone()
	clone.CaptureKeys = true
	if kc.cat != nil {
		kc.cat.Add(clone)
	}
	// The graph side doesn't need the clone wired into container.Info: the
	// CaptureKeys wrapper carries its own Info reference, which is what the
	// emitter consults to pick the handler/decl/func templates.
	wrapped, err := kc.g.MakeCaptureKeys(n, clone)
	if err != nil {
		return n
	}
	return wrapped
}
