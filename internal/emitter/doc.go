// Package emitter implements the code emitter (component F):
// given the sorted final_types, the container catalog, and a root type, it
// produces a single C++ text artifact (includes, forward declarations, full
// Class/Enum definitions, static_asserts, per-type handlers, and a top-level
// wrapper) plus, in typed mode, the wiretype.Type tree that plays the role
// of the compile-time `dy` descriptor built by the `st -> dy` lowering.
//
// Two emission modes are supported: untyped (free `getSizeType` functions
// that write directly) and typed-data-segment (TypeHandler specializations
// whose ::type is a folded Pair of member handler types). The top-level
// wrapper is emitted in both modes. Polymorphic inheritance dispatch is
// emitted only in untyped mode (typed mode emits the plain TypeHandler
// specialization for a polymorphic class), and the dynamic descriptor only
// in typed mode.
package emitter
