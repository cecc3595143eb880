package graph

// PrimitiveKind is the closed set of scalar kinds a Primitive node can carry.
type PrimitiveKind int

const (
	Int8 PrimitiveKind = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
	Float80
	Float128
	Bool
	UIntPtr
	StubbedPointer
	Void
	primitiveKindCount
)

var primitiveSizeAlign = [primitiveKindCount]struct{ size, align uint64 }{
	Int8:           {1, 1},
	Int16:          {2, 2},
	Int32:          {4, 4},
	Int64:          {8, 8},
	UInt8:          {1, 1},
	UInt16:         {2, 2},
	UInt32:         {4, 4},
	UInt64:         {8, 8},
	Float32:        {4, 4},
	Float64:        {8, 8},
	Float80:        {16, 16},
	Float128:       {16, 16},
	Bool:           {1, 1},
	UIntPtr:        {8, 8},
	StubbedPointer: {8, 8},
	Void:           {0, 1},
}

var primitiveNames = [primitiveKindCount]string{
	Int8: "int8_t", Int16: "int16_t", Int32: "int32_t", Int64: "int64_t",
	UInt8: "uint8_t", UInt16: "uint16_t", UInt32: "uint32_t", UInt64: "uint64_t",
	Float32: "float", Float64: "double", Float80: "long double", Float128: "__float128",
	Bool: "bool", UIntPtr: "uintptr_t", StubbedPointer: "void*", Void: "void",
}

// Primitive is a scalar leaf node. A TypeGraph holds at most one Primitive
// node per kind: MakePrimitive returns the shared singleton.
type Primitive struct {
	id   NodeID
	kind PrimitiveKind
}

func (p *Primitive) ID() NodeID        { return p.id }
func (p *Primitive) Kind() Kind        { return KindPrimitive }
func (p *Primitive) PrimKind() PrimitiveKind { return p.kind }
func (p *Primitive) Name() string      { return primitiveNames[p.kind] }
func (p *Primitive) Size() uint64      { return primitiveSizeAlign[p.kind].size }
func (p *Primitive) Align() uint64     { return primitiveSizeAlign[p.kind].align }
func (p *Primitive) Accept(v Visitor)  { v.VisitPrimitive(p) }
