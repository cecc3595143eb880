package wire

import (
	"bytes"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTripCases(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 32, ^uint64(0)}
	for _, v := range cases {
		var buf bytes.Buffer
		require.NoError(t, EncodeVarInt(&buf, v))
		got, n, err := DecodeVarInt(&buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.Equal(t, EncodedVarIntLen(v), n)
	}
}

func TestDecodeVarIntTruncated(t *testing.T) {
	_, _, err := DecodeVarInt(bytes.NewReader([]byte{0x80}))
	require.ErrorIs(t, err, ErrTruncatedVarInt)

	_, _, err = DecodeVarInt(bytes.NewReader(nil))
	require.ErrorIs(t, err, ErrTruncatedVarInt)
}

func TestDecodeVarIntOverlong(t *testing.T) {
	overlong := bytes.Repeat([]byte{0x80}, maxVarIntBytes+1)
	_, _, err := DecodeVarInt(bytes.NewReader(overlong))
	require.ErrorIs(t, err, ErrTruncatedVarInt)
}

// TestVarIntRoundTripProperty validates round-trip property:
// decode(encode(v)) == v for every u64, and the consumed byte count always
// matches EncodedVarIntLen.
func TestVarIntRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("encode/decode round-trips any uint64", prop.ForAll(
		func(v uint64) bool {
			var buf bytes.Buffer
			if err := EncodeVarInt(&buf, v); err != nil {
				return false
			}
			got, n, err := DecodeVarInt(&buf)
			if err != nil {
				return false
			}
			return got == v && n == EncodedVarIntLen(v)
		},
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
