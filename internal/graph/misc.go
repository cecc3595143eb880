package graph

// Array is a fixed-length array node: Element type repeated Length times.
type Array struct {
	id      NodeID
	Element Node
	Length  uint64
}

func (a *Array) ID() NodeID       { return a.id }
func (a *Array) Kind() Kind       { return KindArray }
func (a *Array) Name() string     { return "" }
func (a *Array) Size() uint64     { return a.Element.Size() * a.Length }
func (a *Array) Align() uint64    { return a.Element.Align() }
func (a *Array) Accept(v Visitor) { v.VisitArray(a) }

// Typedef is a named alias for an underlying type.
type Typedef struct {
	id         NodeID
	TypedefName string
	Underlying Node
}

func (t *Typedef) ID() NodeID       { return t.id }
func (t *Typedef) Kind() Kind       { return KindTypedef }
func (t *Typedef) Name() string     { return t.TypedefName }
func (t *Typedef) Size() uint64     { return t.Underlying.Size() }
func (t *Typedef) Align() uint64    { return t.Underlying.Align() }
func (t *Typedef) Accept(v Visitor) { v.VisitTypedef(t) }

// Pointer is a raw/smart pointer node. It is a distinct variant from
// Reference so the emitter can apply the pointer-identity (dedup) protocol
// only where it's semantically meaningful.
type Pointer struct {
	id      NodeID
	Pointee Node
}

func (p *Pointer) ID() NodeID       { return p.id }
func (p *Pointer) Kind() Kind       { return KindPointer }
func (p *Pointer) Name() string     { return "" }
func (p *Pointer) Size() uint64     { return 8 }
func (p *Pointer) Align() uint64    { return 8 }
func (p *Pointer) Accept(v Visitor) { v.VisitPointer(p) }

// Reference is a C++ reference node: never null, never re-pointed, so the
// emitter skips the pointer-dedup protocol for it.
type Reference struct {
	id      NodeID
	Pointee Node
}

func (r *Reference) ID() NodeID       { return r.id }
func (r *Reference) Kind() Kind       { return KindReference }
func (r *Reference) Name() string     { return "" }
func (r *Reference) Size() uint64     { return 8 }
func (r *Reference) Align() uint64    { return 8 }
func (r *Reference) Accept(v Visitor) { v.VisitReference(r) }

// Incomplete is a placeholder for a forward-declared or opaque type. It has
// no known size/align and its members are dropped by RemoveMembers.
type Incomplete struct {
	id              NodeID
	IncompleteName string
}

func (i *Incomplete) ID() NodeID       { return i.id }
func (i *Incomplete) Kind() Kind       { return KindIncomplete }
func (i *Incomplete) Name() string     { return i.IncompleteName }
func (i *Incomplete) Size() uint64     { return 0 }
func (i *Incomplete) Align() uint64    { return 1 }
func (i *Incomplete) Accept(v Visitor) { v.VisitIncomplete(i) }

// Dummy is a zero-semantics placeholder preserving size/align, substituted
// for a stubbed template parameter by TypeIdentifier.
type Dummy struct {
	id         NodeID
	DummySize  uint64
	DummyAlign uint64
}

func (d *Dummy) ID() NodeID       { return d.id }
func (d *Dummy) Kind() Kind       { return KindDummy }
func (d *Dummy) Name() string     { return "__oi_dummy" }
func (d *Dummy) Size() uint64     { return d.DummySize }
func (d *Dummy) Align() uint64    { return d.DummyAlign }
func (d *Dummy) Accept(v Visitor) { v.VisitDummy(d) }

// DummyAllocator is Dummy's allocator-aware variant: it keeps a reference to
// the allocator's value_type (Inner) so the emitter can still size-check it,
// while treating the allocator's internals as opaque.
type DummyAllocator struct {
	id         NodeID
	Inner      Node
	DummySize  uint64
	DummyAlign uint64
}

func (d *DummyAllocator) ID() NodeID       { return d.id }
func (d *DummyAllocator) Kind() Kind       { return KindDummyAllocator }
func (d *DummyAllocator) Name() string     { return "__oi_dummy_allocator" }
func (d *DummyAllocator) Size() uint64     { return d.DummySize }
func (d *DummyAllocator) Align() uint64    { return d.DummyAlign }
func (d *DummyAllocator) Accept(v Visitor) { v.VisitDummyAllocator(d) }

// CaptureKeys wraps a container member's node, requesting that the emitter
// additionally capture and emit the container's keys (for map-like
// containers) rather than only their count/identity.
type CaptureKeys struct {
	id    NodeID
	Inner Node
	Info  ContainerInfoRef
}

func (c *CaptureKeys) ID() NodeID       { return c.id }
func (c *CaptureKeys) Kind() Kind       { return KindCaptureKeys }
func (c *CaptureKeys) Name() string     { return c.Inner.Name() }
func (c *CaptureKeys) Size() uint64     { return c.Inner.Size() }
func (c *CaptureKeys) Align() uint64    { return c.Inner.Align() }
func (c *CaptureKeys) Accept(v Visitor) { v.VisitCaptureKeys(c) }

// CycleBreaker is a sentinel inserted on exactly one edge of each cycle by
// CycleFinder. Downstream passes treat it as a leaf: it carries the target's
// size/align/name for diagnostics but never recurses into Target itself.
type CycleBreaker struct {
	id     NodeID
	Target Node
}

func (c *CycleBreaker) ID() NodeID       { return c.id }
func (c *CycleBreaker) Kind() Kind       { return KindCycleBreaker }
func (c *CycleBreaker) Name() string     { return c.Target.Name() }
func (c *CycleBreaker) Size() uint64     { return c.Target.Size() }
func (c *CycleBreaker) Align() uint64    { return c.Target.Align() }
func (c *CycleBreaker) Accept(v Visitor) { v.VisitCycleBreaker(c) }
