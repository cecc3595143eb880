// Package jit implements the process-wide JIT handshake
// describes: a lazy one-shot compile (here, an emitter.Emit run rather than
// an actual C++ compile — see Slot.BeginCompile's doc) guarded by a
// false->true critical-section flag, publishing an introspect function
// pointer and a dynamic descriptor with release semantics that readers
// acquire before dereferencing.
package jit
