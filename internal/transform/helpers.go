package transform

import "github.com/facebookexperimental/object-introspection-sub001/internal/graph"

// stripTypedefs unwraps a chain of Typedef nodes to find the underlying
// node, used wherever matching needs a "typedef-stripped" type
// (TypeIdentifier's allocator detection, KeyCapture's container lookup).
func stripTypedefs(n graph.Node) graph.Node {
	for {
		td, ok := n.(*graph.Typedef)
		if !ok {
			return n
		}
		n = td.Underlying
	}
}

// dummySize applies the size-1 ABI adjustment: a reported size of 1 (the
// usual case for an empty-base-optimizable type) collapses to 0.
func dummySize(reported uint64) uint64 {
	if reported == 0 {
		return 0
	}
	return reported - 1
}
