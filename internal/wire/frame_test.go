package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{Magic: Magic, Cookie: 0xdeadbeef, Size: 42, TimeNS: 123456789}
	var buf bytes.Buffer
	require.NoError(t, WriteHeader(&buf, h))
	got, err := ReadHeader(&buf)
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestReadHeaderShort(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte{1, 2, 3}))
	require.ErrorIs(t, err, ErrBadFrame)
}

func TestValidateHeaderMismatch(t *testing.T) {
	h := Header{Magic: Magic, Cookie: 1}
	require.NoError(t, ValidateHeader(h, 1))
	require.ErrorIs(t, ValidateHeader(h, 2), ErrBadFrame)

	bad := Header{Magic: 0, Cookie: 1}
	require.ErrorIs(t, ValidateHeader(bad, 1), ErrBadFrame)
}

func TestTrailerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTrailer(&buf))
	require.NoError(t, ReadTrailer(&buf))
}

func TestReadTrailerBadSentinel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeVarInt(&buf, Sentinel))
	require.NoError(t, EncodeVarInt(&buf, 1))
	require.ErrorIs(t, ReadTrailer(&buf), ErrBadFrame)
}
