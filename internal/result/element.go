// Package result defines Element, the decoded tree node that is the shared
// currency between internal/decoder (which produces a preorder stream of
// them) and internal/postprocess (which annotates them with exclusive
// size) on the way to a presenter.
package result

// DataKind tags which field of Data is meaningful.
type DataKind int

const (
	DataNone DataKind = iota
	DataScalar
	DataPointer
	DataString
)

// Data is an Element's optional raw payload: a scalar, a pointer address,
// or a captured string ("data (one of {scalar u64, pointer u64,
// string})").
type Data struct {
	Kind    DataKind
	Scalar  uint64
	Pointer uint64
	Str     string
}

// ContainerStats is an Element's optional container-shape payload ("container_stats {length, capacity}").
type ContainerStats struct {
	Length   uint64
	Capacity uint64
}

// Element captures one node of the decoded tree.
type Element struct {
	Name          string
	TypePath      []string
	TypeNames     []string
	StaticSize    uint64
	ExclusiveSize uint64

	// Pointer is the address this node was reached through, if any (nil
	// unless this element sits behind a pointer).
	Pointer *uint64

	Data      *Data
	Container *ContainerStats
	IsSet     *bool

	IsPrimitive bool
}
