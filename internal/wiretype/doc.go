// Package wiretype implements the data-first algebra calls
// `st`/`dy`: a closed set of wire shapes (Unit, VarInt, Pair, Sum, List)
// shared by the encoder (what the emitted traversal code writes) and the
// describer (the dynamic mirror handed to the decoder). Per // design note, a language without zero-cost generic monomorphization
// expresses the duality as one data structure plus two interpreters rather
// than a template/constant-folding trick: Type is that one structure,
// Write is the encoder interpreter (no code or test in this repository
// calls it; the real encoder is the emitted text in internal/emitter),
// and internal/decoder's ParsedData is the describer-driven interpreter.
package wiretype
