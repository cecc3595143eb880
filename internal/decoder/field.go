package decoder

// FieldKind tags how a Field's own wire data should be read and how its
// children (if any) are produced. It is the decoder-side counterpart of
// the emitter's per-type handler: built once from the final type graph and
// the catalog, then reused by every IntrospectionResult walk over a wire
// stream produced against that same type.
type FieldKind int

const (
	// FieldAggregate has no wire data of its own: its Fields are walked in
	// order, each consuming its own bytes — a Pair-fold is exactly "walk
	// these sub-shapes back to back".
	FieldAggregate FieldKind = iota
	// FieldScalar is a single VarInt leaf: a primitive or enum member.
	FieldScalar
	// FieldPointer is the fixed pointer handler shape:
	// Pair(VarInt{addr}, Sum(Unit, inner)). Fields[0], if present, is the
	// pointee; it is only walked when the Sum tag is 1 (non-null) and the
	// address hasn't been seen before on this traversal.
	FieldPointer
	// FieldContainer reads a VarInt capacity, then a VarInt length, then
	// walks ElemField that many times: the vector-of-int scenario's
	// Pair(VarInt{capacity}, List(e)) shape, where the List supplies its
	// own length prefix independently of the leading capacity VarInt.
	FieldContainer
)

// Field is one node of the static field tree the emitter derives from the
// final type graph: its display name, its wire shape, and (for aggregates
// and containers) its children in declaration order.
type Field struct {
	Name       string
	TypeNames  []string
	StaticSize uint64

	Kind        FieldKind
	IsPrimitive bool
	IsSet       bool // true when this is a Set/UnorderedSet-kind container

	// EnumNames, if non-nil, maps a FieldScalar's decoded value to its
	// enum constant name for presenters that want it: the Enum node's
	// i64 -> name map.
	EnumNames map[uint64]string

	Fields   []*Field // FieldAggregate: members; FieldPointer: [0]=pointee
	ElemField *Field   // FieldContainer: the per-element field
}
