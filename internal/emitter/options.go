package emitter

import "github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"

// Mode selects which of two handler shapes is emitted.
type Mode int

const (
	// ModeUntyped emits free getSizeType functions that write directly to
	// the output buffer.
	ModeUntyped Mode = iota
	// ModeTyped emits TypeHandler<DB, T> specializations built from the
	// st/dy wire-type algebra, plus the dynamic descriptor
	// constant.
	ModeTyped
)

// VTableRange is the [min, max) vptr range a symbol lookup would report for
// one polymorphic class, used by the polymorphic dispatch handler to
// identify which concrete child a base pointer's vtable belongs to.
// Resolving real vtable symbols is out of scope here; callers supply these
// ranges however their environment determines them (a linker map, a DWARF
// index, or — in tests — literal values).
type VTableRange struct {
	Min, Max uint64
}

// Options configures one Emit call.
type Options struct {
	Mode Mode

	// Polymorphic enables dispatch emission for classes with
	// Virtuality != 0. VTableRanges maps a class's fully-qualified name to
	// its [min,max) vtable range; a class absent from the map falls back to
	// its own concrete handler, writing -1 for the dispatch index.
	Polymorphic  bool
	VTableRanges map[string]VTableRange

	// IncludeTime controls whether the top-level wrapper's optional
	// time_ns header slot is written (step 1: "then,
	// optionally, a time slot").
	IncludeTime bool

	// RootTypeName is the C++ type name hashed (via hash64) to build the
	// wrapper's exported symbol name and descriptor constant name. Defaults
	// to the root node's FullyQualifiedName/Name.
	RootTypeName string

	// Cookie is the wrapper's header cookie ("generator-assigned,
	// echoed verbatim"). Nil means generate one from a random UUID truncated
	// to 64 bits; tests pass an explicit value for reproducibility.
	Cookie *uint64
}

// Artifact is the emitter's output: the generated C++ source text, plus —
// in ModeTyped — the wiretype.Type tree for the root handler, which a
// caller can feed straight to internal/decoder without re-deriving it from
// the emitted text ("the `dy` tree" collaborator contract).
type Artifact struct {
	Source     string
	Descriptor *wiretype.Type
}
