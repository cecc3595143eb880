package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrBadFrame is BadFrame: MAGIC or COOKIE mismatch.
var ErrBadFrame = errors.New("wire: bad frame")

// Magic is the fixed 64-bit constant every emitted frame's first word
// carries ("a fixed 64-bit constant chosen by implementation").
const Magic uint64 = 0x4F49_5F57_4952_4530 // "OI_WIRE0" read as big-endian ASCII

// Sentinel is the value both trailing VarInts carry.
const Sentinel uint64 = 123456789

// wordSize is the native-word slot size the header uses.
const wordSize = 8

// Header is the frame header: magic | cookie | size | time_ns, each an
// 8-byte little-endian word (wire format version 0).
type Header struct {
	Magic  uint64
	Cookie uint64
	Size   uint64
	TimeNS uint64
}

// WriteHeader writes h as four little-endian u64 words.
func WriteHeader(w io.Writer, h Header) error {
	var buf [4 * wordSize]byte
	binary.LittleEndian.PutUint64(buf[0:8], h.Magic)
	binary.LittleEndian.PutUint64(buf[8:16], h.Cookie)
	binary.LittleEndian.PutUint64(buf[16:24], h.Size)
	binary.LittleEndian.PutUint64(buf[24:32], h.TimeNS)
	_, err := w.Write(buf[:])
	return err
}

// ReadHeader reads a Header written by WriteHeader.
func ReadHeader(r io.Reader) (Header, error) {
	var buf [4 * wordSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return Header{}, fmt.Errorf("%w: short header: %v", ErrBadFrame, err)
	}
	return Header{
		Magic:  binary.LittleEndian.Uint64(buf[0:8]),
		Cookie: binary.LittleEndian.Uint64(buf[8:16]),
		Size:   binary.LittleEndian.Uint64(buf[16:24]),
		TimeNS: binary.LittleEndian.Uint64(buf[24:32]),
	}, nil
}

// ValidateHeader checks MAGIC and COOKIE against the expected generator
// assignment; mismatch is ErrBadFrame ("Readers validate MAGIC and
// COOKIE; mismatch -> BadFrame").
func ValidateHeader(h Header, expectedCookie uint64) error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: magic %#x, want %#x", ErrBadFrame, h.Magic, Magic)
	}
	if h.Cookie != expectedCookie {
		return fmt.Errorf("%w: cookie %#x, want %#x", ErrBadFrame, h.Cookie, expectedCookie)
	}
	return nil
}

// WriteTrailer writes the two trailing sentinel VarInts.
func WriteTrailer(w io.ByteWriter) error {
	if err := EncodeVarInt(w, Sentinel); err != nil {
		return err
	}
	return EncodeVarInt(w, Sentinel)
}

// ReadTrailer reads and validates the two trailing sentinel VarInts,
// returning ErrBadFrame if either doesn't match.
func ReadTrailer(r io.ByteReader) error {
	for i := 0; i < 2; i++ {
		v, _, err := DecodeVarInt(r)
		if err != nil {
			return err
		}
		if v != Sentinel {
			return fmt.Errorf("%w: trailer sentinel %d, want %d", ErrBadFrame, v, Sentinel)
		}
	}
	return nil
}
