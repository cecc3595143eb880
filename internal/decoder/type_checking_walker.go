package decoder

import (
	"errors"
	"fmt"

	"github.com/facebookexperimental/object-introspection-sub001/internal/wire"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
)

// ErrUnexpectedEndOfSegment is UnexpectedEndOfSegment.
var ErrUnexpectedEndOfSegment = errors.New("decoder: unexpected end of segment")

// EventKind tags one TypeCheckingWalker event.
type EventKind int

const (
	EventVarInt EventKind = iota
	EventSumIndex
	EventListLength
)

// Event is one fixed-width datum TypeCheckingWalker reads off the wire
// while validating a Type shape ("a stream of VarInt | SumIndex
// | ListLength events").
type Event struct {
	Kind     EventKind
	VarInt   uint64 // EventVarInt, EventListLength
	SumIndex int    // EventSumIndex
}

// TypeCheckingWalker is a stack machine independent of ParsedData (Parse
// does not use it): a structural validator over the same wiretype shapes
// and a byte cursor that, rather than building a lazy tree,
// reads every VarInt the shape implies up front and reports it as an
// Event, failing fast on a malformed tag or a cursor that runs off the end
// before the shape is satisfied.
type TypeCheckingWalker struct {
	cur *wire.Cursor
}

// NewTypeCheckingWalker wraps cur for validating one Type's worth of bytes.
func NewTypeCheckingWalker(cur *wire.Cursor) *TypeCheckingWalker {
	return &TypeCheckingWalker{cur: cur}
}

// Walk validates ty against the wrapped cursor, calling emit once per Event
// in the order the bytes are consumed. It stops and returns the first
// error from emit or from a malformed/truncated read.
func (w *TypeCheckingWalker) Walk(ty *wiretype.Type, emit func(Event) error) error {
	switch ty.Kind {
	case wiretype.KindUnit:
		return nil
	case wiretype.KindVarInt:
		v, _, err := wire.DecodeVarInt(w.cur)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnexpectedEndOfSegment, err)
		}
		return emit(Event{Kind: EventVarInt, VarInt: v})
	case wiretype.KindPair:
		if err := w.Walk(ty.First, emit); err != nil {
			return err
		}
		return w.Walk(ty.Second, emit)
	case wiretype.KindSum:
		i, _, err := wire.DecodeVarInt(w.cur)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnexpectedEndOfSegment, err)
		}
		if int(i) >= len(ty.Variants) {
			return fmt.Errorf("%w: tag %d, %d variants", ErrSumIndexOutOfRange, i, len(ty.Variants))
		}
		if err := emit(Event{Kind: EventSumIndex, SumIndex: int(i)}); err != nil {
			return err
		}
		return w.Walk(ty.Variants[i], emit)
	case wiretype.KindList:
		n, _, err := wire.DecodeVarInt(w.cur)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnexpectedEndOfSegment, err)
		}
		if err := emit(Event{Kind: EventListLength, VarInt: n}); err != nil {
			return err
		}
		for i := uint64(0); i < n; i++ {
			if err := w.Walk(ty.Elem, emit); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("decoder: unknown wiretype kind %v", ty.Kind)
	}
}
