package graph

import "errors"

// ErrArenaExhausted is returned by Make* once MaxNodes is exceeded. It maps
// to the GraphArenaExhausted error kind.
var ErrArenaExhausted = errors.New("graph: arena exhausted")

// TypeGraph owns every node reachable from its roots in a single arena.
// Node references are stable for the lifetime of the TypeGraph (nothing is
// ever reallocated out from under a held *Class/*Container/etc pointer).
type TypeGraph struct {
	// MaxNodes bounds the arena; zero means unbounded.
	MaxNodes int

	nextID NodeID
	nodes  []Node
	prims  [primitiveKindCount]*Primitive

	roots      []Node
	FinalTypes []Node // populated by the TopoSort pass
}

// NewTypeGraph returns an empty arena, optionally capped at maxNodes (0 = unbounded).
func NewTypeGraph(maxNodes int) *TypeGraph {
	return &TypeGraph{MaxNodes: maxNodes}
}

func (g *TypeGraph) allocID() (NodeID, error) {
	if g.MaxNodes > 0 && int(g.nextID) >= g.MaxNodes {
		return 0, ErrArenaExhausted
	}
	id := g.nextID
	g.nextID++
	return id, nil
}

// MakePrimitive returns the graph's singleton Primitive node for kind,
// allocating it on first use.
func (g *TypeGraph) MakePrimitive(kind PrimitiveKind) (*Primitive, error) {
	if p := g.prims[kind]; p != nil {
		return p, nil
	}
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	p := &Primitive{id: id, kind: kind}
	g.prims[kind] = p
	g.nodes = append(g.nodes, p)
	return p, nil
}

// MakeClass allocates a new Class node (never a singleton: two classes with
// the same name are still distinct nodes).
func (g *TypeGraph) MakeClass(kind ClassKind, name, fqName string, size uint64) (*Class, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	c := &Class{id: id, kind: kind, ClassName: name, FullyQualifiedName: fqName, size: size}
	g.nodes = append(g.nodes, c)
	return c, nil
}

// MakeContainer allocates a new Container node.
func (g *TypeGraph) MakeContainer(name string) (*Container, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	c := &Container{id: id, DisplayName: name}
	g.nodes = append(g.nodes, c)
	return c, nil
}

// MakeEnum allocates a new Enum node.
func (g *TypeGraph) MakeEnum(name string, size uint64) (*Enum, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	e := &Enum{id: id, EnumName: name, size: size}
	g.nodes = append(g.nodes, e)
	return e, nil
}

// MakeArray allocates a new Array node.
func (g *TypeGraph) MakeArray(elem Node, length uint64) (*Array, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	a := &Array{id: id, Element: elem, Length: length}
	g.nodes = append(g.nodes, a)
	return a, nil
}

// MakeTypedef allocates a new Typedef node.
func (g *TypeGraph) MakeTypedef(name string, underlying Node) (*Typedef, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	t := &Typedef{id: id, TypedefName: name, Underlying: underlying}
	g.nodes = append(g.nodes, t)
	return t, nil
}

// MakePointer allocates a new Pointer node.
func (g *TypeGraph) MakePointer(pointee Node) (*Pointer, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	p := &Pointer{id: id, Pointee: pointee}
	g.nodes = append(g.nodes, p)
	return p, nil
}

// MakeReference allocates a new Reference node.
func (g *TypeGraph) MakeReference(pointee Node) (*Reference, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	r := &Reference{id: id, Pointee: pointee}
	g.nodes = append(g.nodes, r)
	return r, nil
}

// MakeIncomplete allocates a new Incomplete node.
func (g *TypeGraph) MakeIncomplete(name string) (*Incomplete, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	i := &Incomplete{id: id, IncompleteName: name}
	g.nodes = append(g.nodes, i)
	return i, nil
}

// MakeDummy allocates a new Dummy node.
func (g *TypeGraph) MakeDummy(size, align uint64) (*Dummy, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	d := &Dummy{id: id, DummySize: size, DummyAlign: align}
	g.nodes = append(g.nodes, d)
	return d, nil
}

// MakeDummyAllocator allocates a new DummyAllocator node.
func (g *TypeGraph) MakeDummyAllocator(inner Node, size, align uint64) (*DummyAllocator, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	d := &DummyAllocator{id: id, Inner: inner, DummySize: size, DummyAlign: align}
	g.nodes = append(g.nodes, d)
	return d, nil
}

// MakeCaptureKeys allocates a new CaptureKeys wrapper node.
func (g *TypeGraph) MakeCaptureKeys(inner Node, info ContainerInfoRef) (*CaptureKeys, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	c := &CaptureKeys{id: id, Inner: inner, Info: info}
	g.nodes = append(g.nodes, c)
	return c, nil
}

// MakeCycleBreaker allocates a new CycleBreaker sentinel.
func (g *TypeGraph) MakeCycleBreaker(target Node) (*CycleBreaker, error) {
	id, err := g.allocID()
	if err != nil {
		return nil, err
	}
	c := &CycleBreaker{id: id, Target: target}
	g.nodes = append(g.nodes, c)
	return c, nil
}

// AddRoot registers n as a traversal root (e.g. the type passed to the
// top-level emitted entry point).
func (g *TypeGraph) AddRoot(n Node) { g.roots = append(g.roots, n) }

// Roots returns the registered root nodes, in registration order.
func (g *TypeGraph) Roots() []Node { return g.roots }

// ReplaceRoots overwrites the root list. Used by mutating passes
// (IdentifyContainers, KeyCapture) when a root node itself is replaced by a
// different node and the graph's root bookkeeping must follow it.
func (g *TypeGraph) ReplaceRoots(newRoots []Node) { g.roots = newRoots }

// Nodes returns every node ever allocated in this arena, in allocation
// (NodeID) order. This is the graph's "all nodes" view, distinct from
// FinalTypes (TopoSort's dependency-ordered subset reachable from roots).
func (g *TypeGraph) Nodes() []Node { return g.nodes }

// NodeCount returns the number of nodes allocated so far.
func (g *TypeGraph) NodeCount() int { return len(g.nodes) }
