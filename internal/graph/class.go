package graph

// ClassKind distinguishes struct/class/union semantics. Unions skip
// AddPadding/RemoveMembers' overlap rules because the active member can't be
// determined statically.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindStruct
	ClassKindUnion
)

// Class is a struct/class/union node. Size/Align are optional until
// AlignmentCalc has run (Align returns 0 before that).
type Class struct {
	id   NodeID
	kind ClassKind

	ClassName          string
	FullyQualifiedName string
	size               uint64
	align              uint64
	Packed             bool
	Virtuality         int

	TemplateParams []TemplateParam
	Parents        []Parent
	Members        []Member
	Functions      []Function
	Children       []Child
}

func (c *Class) ID() NodeID           { return c.id }
func (c *Class) Kind() Kind           { return KindClass }
func (c *Class) ClassKind() ClassKind { return c.kind }
func (c *Class) Name() string         { return c.ClassName }
func (c *Class) Size() uint64         { return c.size }
func (c *Class) Align() uint64        { return c.align }
func (c *Class) Accept(v Visitor)     { v.VisitClass(c) }

// SetSize/SetAlign are used by AlignmentCalc (and by the debug-info loader
// when the description provides an authoritative size up front).
func (c *Class) SetSize(size uint64)   { c.size = size }
func (c *Class) SetAlign(align uint64) { c.align = align }

// IsUnion reports whether this class is a union.
func (c *Class) IsUnion() bool { return c.kind == ClassKindUnion }

// HasAllocateFunc reports whether this class looks like an allocator, per
// the Flatten allocator fix-up and TypeIdentifier's stub-detection rule.
func (c *Class) HasAllocateFunc() bool {
	for _, f := range c.Functions {
		if f.Name == "allocate" {
			return true
		}
	}
	return false
}
