package graph

// Visitor is implemented by anything that wants double-dispatch over the
// closed node-kind algebra. Package pass provides RecursiveVisitor (default
// traverse-children behavior) and LazyVisitor (no-op for every kind) so a
// pass only needs to override the kinds it cares about.
type Visitor interface {
	VisitPrimitive(*Primitive)
	VisitClass(*Class)
	VisitContainer(*Container)
	VisitEnum(*Enum)
	VisitArray(*Array)
	VisitTypedef(*Typedef)
	VisitPointer(*Pointer)
	VisitReference(*Reference)
	VisitIncomplete(*Incomplete)
	VisitDummy(*Dummy)
	VisitDummyAllocator(*DummyAllocator)
	VisitCaptureKeys(*CaptureKeys)
	VisitCycleBreaker(*CycleBreaker)
}
