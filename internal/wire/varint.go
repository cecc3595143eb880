package wire

import (
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedVarInt is TruncatedVarInt: the byte stream ended mid-VarInt.
var ErrTruncatedVarInt = errors.New("wire: truncated varint")

// maxVarIntBytes bounds a u64 VarInt's encoded width to 10 bytes
// (ceil(64/7) == 10).
const maxVarIntBytes = 10

// EncodeVarInt writes v as unsigned LEB128: while v >= 128, emit
// 0x80|(v&0x7f) and shift right 7; emit the final byte with the top bit
// clear.
func EncodeVarInt(w io.ByteWriter, v uint64) error {
	for v >= 0x80 {
		if err := w.WriteByte(byte(v&0x7f) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}
	return w.WriteByte(byte(v))
}

// DecodeVarInt reads one LEB128-encoded unsigned integer from r, returning
// the value and the number of bytes consumed. Any read error (including
// io.EOF) before the terminating byte is reported as ErrTruncatedVarInt.
func DecodeVarInt(r io.ByteReader) (uint64, int, error) {
	var result uint64
	var shift uint
	for n := 0; n < maxVarIntBytes; n++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, n, fmt.Errorf("%w: %v", ErrTruncatedVarInt, err)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, n + 1, nil
		}
		shift += 7
	}
	return 0, maxVarIntBytes, fmt.Errorf("%w: exceeds %d bytes", ErrTruncatedVarInt, maxVarIntBytes)
}

// EncodedVarIntLen returns the number of bytes EncodeVarInt would write for
// v, without allocating a writer — used by the property test asserting
// decode(encode(v)).width == len(encode(v)).
func EncodedVarIntLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
