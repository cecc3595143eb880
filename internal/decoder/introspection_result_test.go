package decoder

import (
	"bytes"
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/result"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wire"
	"github.com/stretchr/testify/require"
)

// buildStructBytes returns bytes matching a struct{int32 a; int32 b;} field
// tree's wire shape: two back-to-back VarInts.
func buildStructBytes(t *testing.T, a, b uint64) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, wire.EncodeVarInt(&buf, a))
	require.NoError(t, wire.EncodeVarInt(&buf, b))
	return buf.Bytes()
}

func structField() *Field {
	return &Field{
		Name: "root",
		Kind: FieldAggregate,
		Fields: []*Field{
			{Name: "a", Kind: FieldScalar, IsPrimitive: true},
			{Name: "b", Kind: FieldScalar, IsPrimitive: true},
		},
	}
}

func TestIntrospectionResultDecodesStructFields(t *testing.T) {
	data := buildStructBytes(t, 7, 42)
	ir := NewIntrospectionResult(wire.NewCursor(data), structField())

	var elems []result.Element
	for {
		e, ok, err := ir.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		elems = append(elems, e)
	}

	require.Len(t, elems, 3)
	require.Equal(t, "root", elems[0].Name)
	require.Equal(t, []string{"root", "a"}, elems[1].TypePath)
	require.Equal(t, uint64(7), elems[1].Data.Scalar)
	require.Equal(t, []string{"root", "b"}, elems[2].TypePath)
	require.Equal(t, uint64(42), elems[2].Data.Scalar)
}

// TestIntrospectionResultContainerRepeatsElemField matches seed scenario
// S4's Pair(VarInt{capacity}, List(elem)) shape: a leading capacity VarInt
// distinct from the List's own length prefix, so a vector that over-
// allocated beyond its element count decodes both numbers independently.
func TestIntrospectionResultContainerRepeatsElemField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.EncodeVarInt(&buf, 5)) // capacity
	require.NoError(t, wire.EncodeVarInt(&buf, 3)) // length
	require.NoError(t, wire.EncodeVarInt(&buf, 1))
	require.NoError(t, wire.EncodeVarInt(&buf, 2))
	require.NoError(t, wire.EncodeVarInt(&buf, 3))

	root := &Field{
		Name:      "vec",
		Kind:      FieldContainer,
		ElemField: &Field{Name: "[]", Kind: FieldScalar, IsPrimitive: true},
	}
	ir := NewIntrospectionResult(wire.NewCursor(buf.Bytes()), root)

	var values []uint64
	var containerElem *result.Element
	for {
		e, ok, err := ir.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		if e.Name == "vec" {
			containerElem = &e
			continue
		}
		values = append(values, e.Data.Scalar)
	}
	require.NotNil(t, containerElem)
	require.Equal(t, uint64(3), containerElem.Container.Length)
	require.Equal(t, uint64(5), containerElem.Container.Capacity)
	require.Equal(t, []uint64{1, 2, 3}, values)
}

func TestIntrospectionResultSkipsUnseenNilPointer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.EncodeVarInt(&buf, 0)) // addr
	require.NoError(t, wire.EncodeVarInt(&buf, 0)) // sum tag: null

	root := &Field{
		Name: "p",
		Kind: FieldPointer,
		Fields: []*Field{
			{Name: "*p", Kind: FieldScalar, IsPrimitive: true},
		},
	}
	ir := NewIntrospectionResult(wire.NewCursor(buf.Bytes()), root)

	e, ok, err := ir.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, e.Pointer)
	require.Equal(t, uint64(0), *e.Pointer)

	_, ok, err = ir.Next()
	require.NoError(t, err)
	require.False(t, ok, "a null pointer must not recurse into its pointee")
}

// TestIntrospectionResultDeterminism validates property 9: for
// any byte stream and field tree, iterating twice over fresh decoders
// yields the identical Element sequence.
func TestIntrospectionResultDeterminism(t *testing.T) {
	data := buildStructBytes(t, 11, 99)

	run := func() []result.Element {
		ir := NewIntrospectionResult(wire.NewCursor(data), structField())
		var elems []result.Element
		for {
			e, ok, err := ir.Next()
			require.NoError(t, err)
			if !ok {
				break
			}
			elems = append(elems, e)
		}
		return elems
	}

	first := run()
	second := run()
	require.Equal(t, first, second)
}
