// Package decoder implements the streaming decode side of the typed
// data-segment protocol: ParsedData's lazy per-shape parse,
// TypeCheckingWalker's validating event stream, and
// IntrospectionResult's explicit-stack preorder iterator that ties decoded
// bytes to a Field tree (the decoder-side counterpart of the emitter's
// per-type handler) to produce result.Element values.
package decoder
