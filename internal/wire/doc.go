// Package wire implements the typed-data-segment protocol from // : unsigned LEB128 VarInt encode/decode, a fixed-capacity
// DataSegment writer that always reports the size actually required (even
// past capacity), and the four-word frame header plus trailing sentinel
// pair every emitted payload carries.
package wire
