package wiretype

import (
	"fmt"
	"io"

	"github.com/facebookexperimental/object-introspection-sub001/internal/wire"
)

// Value is a literal instance of a Type tree, used by tests (and anything
// else that needs to synthesize wire bytes without a real emitted C++
// traversal to run) to drive Write, the encoder interpreter that exists
// alongside the decoder's describer interpreter.
type Value struct {
	Kind   Kind
	UInt   uint64   // VarInt
	First  *Value   // Pair
	Second *Value   // Pair
	Index  int      // Sum
	Inner  *Value   // Sum
	Items  []*Value // List
}

func VUnit() *Value                { return &Value{Kind: KindUnit} }
func VInt(v uint64) *Value         { return &Value{Kind: KindVarInt, UInt: v} }
func VPair(a, b *Value) *Value     { return &Value{Kind: KindPair, First: a, Second: b} }
func VSum(i int, v *Value) *Value  { return &Value{Kind: KindSum, Index: i, Inner: v} }
func VList(items ...*Value) *Value { return &Value{Kind: KindList, Items: items} }

// Write encodes v as wire bytes shaped by ty, writing through w. It is the
// encoder half of the st/dy duality: in the real system this is what the
// emitted traversal code does one field at a time; here it lets tests
// build exact byte streams to feed internal/decoder.
func Write(w io.ByteWriter, ty *Type, v *Value) error {
	if ty.Kind != v.Kind {
		return fmt.Errorf("wiretype: shape mismatch: type is %s, value is %s", ty.Kind, v.Kind)
	}
	switch ty.Kind {
	case KindUnit:
		return nil
	case KindVarInt:
		return wire.EncodeVarInt(w, v.UInt)
	case KindPair:
		if err := Write(w, ty.First, v.First); err != nil {
			return err
		}
		return Write(w, ty.Second, v.Second)
	case KindSum:
		if v.Index < 0 || v.Index >= len(ty.Variants) {
			return fmt.Errorf("wiretype: sum index %d out of range (%d variants)", v.Index, len(ty.Variants))
		}
		if err := wire.EncodeVarInt(w, uint64(v.Index)); err != nil {
			return err
		}
		return Write(w, ty.Variants[v.Index], v.Inner)
	case KindList:
		if err := wire.EncodeVarInt(w, uint64(len(v.Items))); err != nil {
			return err
		}
		for _, item := range v.Items {
			if err := Write(w, ty.Elem, item); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("wiretype: unknown kind %v", ty.Kind)
	}
}
