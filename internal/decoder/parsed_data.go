package decoder

import (
	"errors"
	"fmt"

	"github.com/facebookexperimental/object-introspection-sub001/internal/wire"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
)

// ErrSumIndexOutOfRange is SumIndexOutOfRange.
var ErrSumIndexOutOfRange = errors.New("decoder: sum index out of range")

// LazyValue defers parsing a sub-shape until the caller forces it, matching
// "Pair(a,b) -> return lazy {first=Lazy(it,a), second=Lazy(it,b)}
// — the caller forces in order." Nothing enforces that order: forcing
// second before first desynchronizes the shared cursor.
type LazyValue struct {
	cur *wire.Cursor
	ty  *wiretype.Type
}

// Force parses the deferred sub-shape, advancing the shared cursor.
func (l *LazyValue) Force() (*ParsedData, error) { return Parse(l.cur, l.ty) }

// ListCursor iterates a List's n deferred element parses in order over a
// shared cursor (List case: "n copies of e").
type ListCursor struct {
	cur       *wire.Cursor
	elem      *wiretype.Type
	remaining uint64
}

// Next forces the next element, returning ok=false once all n have been
// consumed.
func (l *ListCursor) Next() (parsed *ParsedData, ok bool, err error) {
	if l.remaining == 0 {
		return nil, false, nil
	}
	l.remaining--
	p, err := Parse(l.cur, l.elem)
	if err != nil {
		return nil, false, err
	}
	return p, true, nil
}

// Remaining reports how many elements are left to force.
func (l *ListCursor) Remaining() uint64 { return l.remaining }

// ParsedData is the result of parsing one wiretype.Type node's worth of
// bytes: exactly one of its fields is meaningful, selected by Type.Kind
//.
type ParsedData struct {
	Type *wiretype.Type

	VarIntValue uint64 // KindVarInt

	PairFirst  *LazyValue // KindPair
	PairSecond *LazyValue // KindPair

	SumIndex int        // KindSum
	SumValue *LazyValue // KindSum

	ListLength uint64      // KindList
	ListValues *ListCursor // KindList
}

// Parse dispatches on ty.Kind and advances cur accordingly:
// Unit consumes nothing; VarInt reads one LEB128 value; Pair and List
// return lazily-forceable sub-parses without reading ahead; Sum reads its
// tag eagerly (it must, to know which variant's shape to defer) and fails
// with ErrSumIndexOutOfRange if the tag is out of range.
func Parse(cur *wire.Cursor, ty *wiretype.Type) (*ParsedData, error) {
	switch ty.Kind {
	case wiretype.KindUnit:
		return &ParsedData{Type: ty}, nil
	case wiretype.KindVarInt:
		v, _, err := wire.DecodeVarInt(cur)
		if err != nil {
			return nil, err
		}
		return &ParsedData{Type: ty, VarIntValue: v}, nil
	case wiretype.KindPair:
		return &ParsedData{
			Type:       ty,
			PairFirst:  &LazyValue{cur: cur, ty: ty.First},
			PairSecond: &LazyValue{cur: cur, ty: ty.Second},
		}, nil
	case wiretype.KindList:
		n, _, err := wire.DecodeVarInt(cur)
		if err != nil {
			return nil, err
		}
		return &ParsedData{
			Type:       ty,
			ListLength: n,
			ListValues: &ListCursor{cur: cur, elem: ty.Elem, remaining: n},
		}, nil
	case wiretype.KindSum:
		i, _, err := wire.DecodeVarInt(cur)
		if err != nil {
			return nil, err
		}
		if int(i) >= len(ty.Variants) {
			return nil, fmt.Errorf("%w: tag %d, %d variants", ErrSumIndexOutOfRange, i, len(ty.Variants))
		}
		return &ParsedData{
			Type:     ty,
			SumIndex: int(i),
			SumValue: &LazyValue{cur: cur, ty: ty.Variants[i]},
		}, nil
	default:
		return nil, fmt.Errorf("decoder: unknown wiretype kind %v", ty.Kind)
	}
}
