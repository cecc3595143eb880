// Package postprocess implements SizedResult, the exclusive-size
// post-processor from: it wraps any forward source of
// result.Element and yields each element annotated with the sum of
// exclusive_size over itself and every descendant in the type-path tree.
package postprocess

import "github.com/facebookexperimental/object-introspection-sub001/internal/result"

// Source is anything SizedResult can drain once, forward-only — satisfied
// by *decoder.IntrospectionResult without that package needing to import
// this one.
type Source interface {
	Next() (result.Element, bool, error)
}

// SizedElement is a result.Element annotated with its exclusive size.
type SizedElement struct {
	result.Element
	Size uint64
}

// SizedResult computes each element's exclusive size in two passes : construction drains src once, recording a running prefix sum of
// exclusive_size and, for each element, the index of its last descendant
// (via a stack keyed on type_path depth); forward iteration then
// subtracts prefix sums to get each element's subtree total in O(1).
type SizedResult struct {
	elements  []result.Element
	prefix    []uint64
	lastChild []int // inclusive index of the last descendant, or len(elements) if still open at the end
	idx       int
}

// NewSizedResult drains src to completion and builds the size index.
func NewSizedResult(src Source) (*SizedResult, error) {
	var elements []result.Element
	for {
		e, ok, err := src.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		elements = append(elements, e)
	}

	n := len(elements)
	prefix := make([]uint64, n)
	var running uint64
	for i, e := range elements {
		running += e.ExclusiveSize
		prefix[i] = running
	}

	lastChild := make([]int, n)
	type frame struct {
		idx   int
		depth int
	}
	var stack []frame
	for i, e := range elements {
		depth := len(e.TypePath)
		for len(stack) > 0 && stack[len(stack)-1].depth >= depth {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			lastChild[top.idx] = i - 1
		}
		stack = append(stack, frame{idx: i, depth: depth})
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lastChild[top.idx] = n
	}

	return &SizedResult{elements: elements, prefix: prefix, lastChild: lastChild}, nil
}

// Next returns the next element with its exclusive size filled in, or
// ok=false once every drained element has been returned.
func (s *SizedResult) Next() (SizedElement, bool) {
	if s.idx >= len(s.elements) {
		return SizedElement{}, false
	}
	i := s.idx
	s.idx++

	var before uint64
	if i > 0 {
		before = s.prefix[i-1]
	}
	var after uint64
	if lc := s.lastChild[i]; lc >= len(s.elements) {
		if len(s.elements) > 0 {
			after = s.prefix[len(s.elements)-1]
		}
	} else {
		after = s.prefix[lc]
	}

	return SizedElement{Element: s.elements[i], Size: after - before}, true
}

// Len returns the total number of drained elements.
func (s *SizedResult) Len() int { return len(s.elements) }
