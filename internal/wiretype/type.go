package wiretype

// Kind is the closed set of wire shapes.
type Kind int

const (
	KindUnit Kind = iota
	KindVarInt
	KindPair
	KindSum
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "Unit"
	case KindVarInt:
		return "VarInt"
	case KindPair:
		return "Pair"
	case KindSum:
		return "Sum"
	case KindList:
		return "List"
	default:
		return "Unknown"
	}
}

// Type is one node of the wire-shape algebra: zero bytes (Unit), one
// LEB128 integer (VarInt), two shapes back-to-back (Pair), a tagged
// union (Sum), or a length-prefixed repetition (List). It plays both
// roles names `st` and `dy`: the emitter builds one Type tree
// per handler and that same tree is both "the shape the generated code
// writes" and "the dynamic descriptor the decoder consults" — there is
// nothing further to lower, which is the isomorphism property tests.
type Type struct {
	Kind     Kind
	First    *Type   // Pair only
	Second   *Type   // Pair only
	Elem     *Type   // List only
	Variants []*Type // Sum only
}

// Unit is the zero-byte shape.
func Unit() *Type { return &Type{Kind: KindUnit} }

// VarIntType is a single LEB128-encoded unsigned integer.
func VarIntType() *Type { return &Type{Kind: KindVarInt} }

// PairType is a followed by b.
func PairType(a, b *Type) *Type { return &Type{Kind: KindPair, First: a, Second: b} }

// SumType is a VarInt tag i<len(variants) followed by variants[i].
func SumType(variants ...*Type) *Type { return &Type{Kind: KindSum, Variants: variants} }

// ListType is a VarInt length n followed by n copies of elem.
func ListType(elem *Type) *Type { return &Type{Kind: KindList, Elem: elem} }

// Fold right-associates a member-handler-type sequence into the nested
// Pair chain describes: "a right-folded Pair of its
// non-padding members' handler types — empty classes collapse to
// Unit<DB>". Fold(nil) == Unit(); Fold([a]) == a; Fold([a,b,c]) ==
// Pair(a, Pair(b, c)).
func Fold(members []*Type) *Type {
	if len(members) == 0 {
		return Unit()
	}
	result := members[len(members)-1]
	for i := len(members) - 2; i >= 0; i-- {
		result = PairType(members[i], result)
	}
	return result
}

// Equal reports structural equality, used by the isomorphism property test
// to compare a handler's built Type against an independently
// constructed expectation.
func (t *Type) Equal(o *Type) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case KindPair:
		return t.First.Equal(o.First) && t.Second.Equal(o.Second)
	case KindList:
		return t.Elem.Equal(o.Elem)
	case KindSum:
		if len(t.Variants) != len(o.Variants) {
			return false
		}
		for i := range t.Variants {
			if !t.Variants[i].Equal(o.Variants[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
