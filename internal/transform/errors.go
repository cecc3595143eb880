package transform

import "errors"

// ErrBadGraph is BadGraph: a structural error (missing child, bad offset, a
// union carrying padding) found mid-pass. Every pass is total on a
// well-formed graph; this only fires on a graph some earlier stage built
// wrong.
var ErrBadGraph = errors.New("transform: bad graph")

// ErrUnbreakableCycle is UnbreakableCycle: CycleFinder found a cycle with no
// preferred edge (Pointer.Pointee, Container template-param type) to break.
var ErrUnbreakableCycle = errors.New("transform: unbreakable cycle")
