package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataSegmentWithinCapacity(t *testing.T) {
	d := NewDataSegment(4)
	require.NoError(t, EncodeVarInt(d, 3))
	require.False(t, d.Overflowed())
	require.Equal(t, 1, d.Required())
	require.Len(t, d.Bytes(), 1)
}

func TestDataSegmentOverflowReportsRequired(t *testing.T) {
	d := NewDataSegment(1)
	for i := 0; i < 5; i++ {
		require.NoError(t, d.WriteByte(byte(i)))
	}
	require.True(t, d.Overflowed())
	require.Equal(t, 5, d.Required())
	require.Len(t, d.Bytes(), 1)
}

func TestDataSegmentReset(t *testing.T) {
	d := NewDataSegment(4)
	require.NoError(t, d.WriteByte(1))
	d.Reset()
	require.Equal(t, 0, d.Required())
	require.False(t, d.Overflowed())
	require.Empty(t, d.Bytes())
}

func TestCursorReadByteEOF(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	b, err := c.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(1), b)
	require.False(t, c.AtEnd())
	_, _ = c.ReadByte()
	require.True(t, c.AtEnd())
	_, err = c.ReadByte()
	require.Error(t, err)
}
