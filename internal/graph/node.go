package graph

// NodeID identifies a node within a single TypeGraph arena. Identity is by
// NodeID, not structural equality: two Class nodes with identical fields are
// still distinct nodes if they were allocated separately.
type NodeID int32

// Kind tags the closed set of node variants a Node can be. It lets callers
// switch on node shape without needing a type assertion chain, and gives
// Accept a concrete value to dispatch on.
type Kind int

const (
	KindPrimitive Kind = iota
	KindClass
	KindContainer
	KindEnum
	KindArray
	KindTypedef
	KindPointer
	KindReference
	KindIncomplete
	KindDummy
	KindDummyAllocator
	KindCaptureKeys
	KindCycleBreaker
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "Primitive"
	case KindClass:
		return "Class"
	case KindContainer:
		return "Container"
	case KindEnum:
		return "Enum"
	case KindArray:
		return "Array"
	case KindTypedef:
		return "Typedef"
	case KindPointer:
		return "Pointer"
	case KindReference:
		return "Reference"
	case KindIncomplete:
		return "Incomplete"
	case KindDummy:
		return "Dummy"
	case KindDummyAllocator:
		return "DummyAllocator"
	case KindCaptureKeys:
		return "CaptureKeys"
	case KindCycleBreaker:
		return "CycleBreaker"
	default:
		return "Unknown"
	}
}

// Node is the interface every type-graph node variant implements. size/align
// are in bytes; a node whose size/align isn't yet computed (e.g. a Class
// before AlignmentCalc has run) returns 0.
type Node interface {
	ID() NodeID
	Kind() Kind
	Name() string
	Size() uint64
	Align() uint64
	// Accept dispatches v's Visit method for this node's concrete kind,
	// standing in for the C++ double-dispatch DECLARE_ACCEPT macro pair.
	Accept(v Visitor)
}

// Qualifier is a template-parameter qualifier. Only Const exists today.
type Qualifier int

const (
	QualifierConst Qualifier = 1 << iota
)

// QualifierSet is a bitset of Qualifier values.
type QualifierSet int

func (s QualifierSet) Has(q Qualifier) bool { return s&QualifierSet(q) != 0 }

// TemplateParam is either a type reference (with qualifiers) or a literal
// value string for a non-type template argument. Exactly one of Type or
// Value is meaningful; IsType reports which.
type TemplateParam struct {
	Type       Node
	Qualifiers QualifierSet
	Value      string
}

func (p TemplateParam) IsType() bool { return p.Type != nil }

// Function is a member function: its name and virtuality (0 = non-virtual).
type Function struct {
	Name       string
	Virtuality int
}

// Member is a Class field: its type, name, bit offset, optional bit size
// (nonzero for bitfields), and optional explicit alignment override (0 means
// "derive from type").
type Member struct {
	Type          Node
	Name          string
	BitOffset     uint64
	BitSize       uint64 // 0 unless this is a bitfield
	ExplicitAlign uint64 // 0 means unset
}

// Parent is a base class: the base type and the bit offset of its subobject
// within the derived class.
type Parent struct {
	Type      Node
	BitOffset uint64
}

// Child is a back-reference from a polymorphic base to one of its concrete
// derived classes, used by the polymorphic-inheritance emission mode.
type Child struct {
	Type *Class
}
