package pass

import "github.com/facebookexperimental/object-introspection-sub001/internal/graph"

// NodeTracker is a bitset keyed by NodeID, guarding recursive traversals
// against the cycles the type graph permits by construction. A pass that
// recurses through an unbroken cycle without consulting a tracker is a bug.
// NewRecursiveVisitor gives each RecursiveVisitor its own tracker;
// Manager.Run does not check whether a pass uses one.
type NodeTracker struct {
	seen map[graph.NodeID]bool
}

// NewNodeTracker returns an empty tracker.
func NewNodeTracker() *NodeTracker {
	return &NodeTracker{seen: make(map[graph.NodeID]bool)}
}

// Visit marks n as seen and reports whether it was already seen before this
// call (i.e. true means "stop recursing, you've been here before").
func (t *NodeTracker) Visit(n graph.Node) bool {
	if n == nil {
		return true
	}
	id := n.ID()
	if t.seen[id] {
		return true
	}
	t.seen[id] = true
	return false
}

// Reset clears all recorded visits, letting the tracker be reused across
// multiple root traversals within the same pass.
func (t *NodeTracker) Reset() {
	t.seen = make(map[graph.NodeID]bool)
}
