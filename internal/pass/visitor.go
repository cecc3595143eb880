package pass

import "github.com/facebookexperimental/object-introspection-sub001/internal/graph"

// LazyVisitor is a graph.Visitor whose every method is a no-op. A pass that
// only cares about a couple of node kinds (and doesn't want to chase
// children) embeds LazyVisitor and overrides just those.
type LazyVisitor struct{}

func (LazyVisitor) VisitPrimitive(*graph.Primitive)             {}
func (LazyVisitor) VisitClass(*graph.Class)                     {}
func (LazyVisitor) VisitContainer(*graph.Container)             {}
func (LazyVisitor) VisitEnum(*graph.Enum)                       {}
func (LazyVisitor) VisitArray(*graph.Array)                     {}
func (LazyVisitor) VisitTypedef(*graph.Typedef)                 {}
func (LazyVisitor) VisitPointer(*graph.Pointer)                 {}
func (LazyVisitor) VisitReference(*graph.Reference)             {}
func (LazyVisitor) VisitIncomplete(*graph.Incomplete)           {}
func (LazyVisitor) VisitDummy(*graph.Dummy)                     {}
func (LazyVisitor) VisitDummyAllocator(*graph.DummyAllocator)   {}
func (LazyVisitor) VisitCaptureKeys(*graph.CaptureKeys)         {}
func (LazyVisitor) VisitCycleBreaker(*graph.CycleBreaker)       {}

func acceptIfSet(n graph.Node, v graph.Visitor) {
	if n == nil {
		return
	}
	n.Accept(v)
}

// RecursiveVisitor is a graph.Visitor whose default behavior recurses into
// every child edge (members, parents, template-param types, array element,
// typedef underlying, pointer/reference pointee, container children). A
// concrete pass embeds *RecursiveVisitor, sets Self to itself so overridden
// methods are reached during recursion (Go has no virtual dispatch), and
// overrides only the kinds it needs. The embedded Tracker must be consulted
// (or inherited via VisitClass/VisitContainer's default, which already does)
// by any override that might otherwise walk into an unbroken cycle.
type RecursiveVisitor struct {
	Self    graph.Visitor
	Tracker *NodeTracker
}

// NewRecursiveVisitor returns a RecursiveVisitor dispatching overrides to self.
func NewRecursiveVisitor(self graph.Visitor) *RecursiveVisitor {
	return &RecursiveVisitor{Self: self, Tracker: NewNodeTracker()}
}

func (r *RecursiveVisitor) VisitPrimitive(*graph.Primitive) {}

func (r *RecursiveVisitor) VisitClass(c *graph.Class) {
	if r.Tracker.Visit(c) {
		return
	}
	for _, p := range c.Parents {
		acceptIfSet(p.Type, r.Self)
	}
	for _, m := range c.Members {
		acceptIfSet(m.Type, r.Self)
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			acceptIfSet(tp.Type, r.Self)
		}
	}
	for _, ch := range c.Children {
		acceptIfSet(ch.Type, r.Self)
	}
}

func (r *RecursiveVisitor) VisitContainer(c *graph.Container) {
	if r.Tracker.Visit(c) {
		return
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			acceptIfSet(tp.Type, r.Self)
		}
	}
}

func (r *RecursiveVisitor) VisitEnum(*graph.Enum) {}

func (r *RecursiveVisitor) VisitArray(a *graph.Array) {
	if r.Tracker.Visit(a) {
		return
	}
	acceptIfSet(a.Element, r.Self)
}

func (r *RecursiveVisitor) VisitTypedef(t *graph.Typedef) {
	if r.Tracker.Visit(t) {
		return
	}
	acceptIfSet(t.Underlying, r.Self)
}

func (r *RecursiveVisitor) VisitPointer(p *graph.Pointer) {
	if r.Tracker.Visit(p) {
		return
	}
	acceptIfSet(p.Pointee, r.Self)
}

func (r *RecursiveVisitor) VisitReference(ref *graph.Reference) {
	if r.Tracker.Visit(ref) {
		return
	}
	acceptIfSet(ref.Pointee, r.Self)
}

func (r *RecursiveVisitor) VisitIncomplete(*graph.Incomplete) {}

func (r *RecursiveVisitor) VisitDummy(*graph.Dummy) {}

func (r *RecursiveVisitor) VisitDummyAllocator(d *graph.DummyAllocator) {
	if r.Tracker.Visit(d) {
		return
	}
	acceptIfSet(d.Inner, r.Self)
}

func (r *RecursiveVisitor) VisitCaptureKeys(c *graph.CaptureKeys) {
	if r.Tracker.Visit(c) {
		return
	}
	acceptIfSet(c.Inner, r.Self)
}

func (r *RecursiveVisitor) VisitCycleBreaker(*graph.CycleBreaker) {}

// Mutator is the return-value-carrying analogue of graph.Visitor: each
// method returns the (possibly different) node that should replace n in
// whatever edge referenced it. Package-level Mutate drives the dispatch and
// memoizes substitutions per source NodeID so that sharing is preserved
// (two members of the same type map to the same replacement).
type Mutator interface {
	MutatePrimitive(*graph.Primitive) graph.Node
	MutateClass(*graph.Class) graph.Node
	MutateContainer(*graph.Container) graph.Node
	MutateEnum(*graph.Enum) graph.Node
	MutateArray(*graph.Array) graph.Node
	MutateTypedef(*graph.Typedef) graph.Node
	MutatePointer(*graph.Pointer) graph.Node
	MutateReference(*graph.Reference) graph.Node
	MutateIncomplete(*graph.Incomplete) graph.Node
	MutateDummy(*graph.Dummy) graph.Node
	MutateDummyAllocator(*graph.DummyAllocator) graph.Node
	MutateCaptureKeys(*graph.CaptureKeys) graph.Node
	MutateCycleBreaker(*graph.CycleBreaker) graph.Node
}

// Mutate dispatches n to the matching method of m, memoizing the result in
// memo so repeated references to the same source node see the same
// replacement (required to preserve graph sharing across the rewrite).
func Mutate(n graph.Node, m Mutator, memo map[graph.NodeID]graph.Node) graph.Node {
	if n == nil {
		return nil
	}
	if replacement, ok := memo[n.ID()]; ok {
		return replacement
	}
	// Reserve the slot before recursing so a cycle back to n resolves to n
	// itself rather than infinitely recursing.
	memo[n.ID()] = n
	var result graph.Node
	switch t := n.(type) {
	case *graph.Primitive:
		result = m.MutatePrimitive(t)
	case *graph.Class:
		result = m.MutateClass(t)
	case *graph.Container:
		result = m.MutateContainer(t)
	case *graph.Enum:
		result = m.MutateEnum(t)
	case *graph.Array:
		result = m.MutateArray(t)
	case *graph.Typedef:
		result = m.MutateTypedef(t)
	case *graph.Pointer:
		result = m.MutatePointer(t)
	case *graph.Reference:
		result = m.MutateReference(t)
	case *graph.Incomplete:
		result = m.MutateIncomplete(t)
	case *graph.Dummy:
		result = m.MutateDummy(t)
	case *graph.DummyAllocator:
		result = m.MutateDummyAllocator(t)
	case *graph.CaptureKeys:
		result = m.MutateCaptureKeys(t)
	case *graph.CycleBreaker:
		result = m.MutateCycleBreaker(t)
	default:
		result = n
	}
	memo[n.ID()] = result
	return result
}

// RecursiveMutator is Mutator's default-recurses-into-children implementation,
// the return-carrying analogue of RecursiveVisitor. A concrete pass embeds
// *RecursiveMutator, sets Self to itself, and overrides only the kinds it
// rewrites; its default methods mutate child edges in place (via r.Mutate)
// and return the same node, preserving identity for everything not rewritten.
type RecursiveMutator struct {
	memo map[graph.NodeID]graph.Node
	self Mutator
}

// NewRecursiveMutator returns a RecursiveMutator dispatching overrides to self.
func NewRecursiveMutator(self Mutator) *RecursiveMutator {
	return &RecursiveMutator{self: self, memo: make(map[graph.NodeID]graph.Node)}
}

// Mutate is the entry point a pass calls on its roots/edges; it threads
// through to package-level Mutate using this RecursiveMutator's memo and self.
func (r *RecursiveMutator) Mutate(n graph.Node) graph.Node {
	return Mutate(n, r.self, r.memo)
}

func (r *RecursiveMutator) MutatePrimitive(p *graph.Primitive) graph.Node { return p }

func (r *RecursiveMutator) MutateClass(c *graph.Class) graph.Node {
	for i := range c.Parents {
		c.Parents[i].Type = r.Mutate(c.Parents[i].Type)
	}
	for i := range c.Members {
		c.Members[i].Type = r.Mutate(c.Members[i].Type)
	}
	for i := range c.TemplateParams {
		if c.TemplateParams[i].IsType() {
			c.TemplateParams[i].Type = r.Mutate(c.TemplateParams[i].Type)
		}
	}
	return c
}

func (r *RecursiveMutator) MutateContainer(c *graph.Container) graph.Node {
	for i := range c.TemplateParams {
		if c.TemplateParams[i].IsType() {
			c.TemplateParams[i].Type = r.Mutate(c.TemplateParams[i].Type)
		}
	}
	return c
}

func (r *RecursiveMutator) MutateEnum(e *graph.Enum) graph.Node { return e }

func (r *RecursiveMutator) MutateArray(a *graph.Array) graph.Node {
	a.Element = r.Mutate(a.Element)
	return a
}

func (r *RecursiveMutator) MutateTypedef(t *graph.Typedef) graph.Node {
	t.Underlying = r.Mutate(t.Underlying)
	return t
}

func (r *RecursiveMutator) MutatePointer(p *graph.Pointer) graph.Node {
	p.Pointee = r.Mutate(p.Pointee)
	return p
}

func (r *RecursiveMutator) MutateReference(ref *graph.Reference) graph.Node {
	ref.Pointee = r.Mutate(ref.Pointee)
	return ref
}

func (r *RecursiveMutator) MutateIncomplete(i *graph.Incomplete) graph.Node { return i }

func (r *RecursiveMutator) MutateDummy(d *graph.Dummy) graph.Node { return d }

func (r *RecursiveMutator) MutateDummyAllocator(d *graph.DummyAllocator) graph.Node {
	d.Inner = r.Mutate(d.Inner)
	return d
}

func (r *RecursiveMutator) MutateCaptureKeys(c *graph.CaptureKeys) graph.Node {
	c.Inner = r.Mutate(c.Inner)
	return c
}

func (r *RecursiveMutator) MutateCycleBreaker(c *graph.CycleBreaker) graph.Node { return c }
