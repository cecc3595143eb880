package postprocess

import (
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/result"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

// sliceSource adapts a fixed []result.Element into a Source, draining it
// once in order.
type sliceSource struct {
	elems []result.Element
	idx   int
}

func (s *sliceSource) Next() (result.Element, bool, error) {
	if s.idx >= len(s.elems) {
		return result.Element{}, false, nil
	}
	e := s.elems[s.idx]
	s.idx++
	return e, true, nil
}

func elem(typePath []string, exclusive uint64) result.Element {
	return result.Element{TypePath: typePath, ExclusiveSize: exclusive}
}

// TestSizedResultNested is seed scenario S6: elements
// (preorder) with exclusive sizes [A=8, B=4, C=2, D=1] and depths
// [1,2,3,2] yield sizes [15, 6, 2, 1].
func TestSizedResultNested(t *testing.T) {
	elems := []result.Element{
		elem([]string{"A"}, 8),
		elem([]string{"A", "B"}, 4),
		elem([]string{"A", "B", "C"}, 2),
		elem([]string{"A", "D"}, 1),
	}
	sr, err := NewSizedResult(&sliceSource{elems: elems})
	require.NoError(t, err)

	want := []uint64{15, 6, 2, 1}
	for i, w := range want {
		got, ok := sr.Next()
		require.True(t, ok)
		require.Equal(t, w, got.Size, "element %d", i)
	}
	_, ok := sr.Next()
	require.False(t, ok)
}

func TestSizedResultFlatSiblings(t *testing.T) {
	elems := []result.Element{
		elem([]string{"root"}, 0),
		elem([]string{"root", "a"}, 3),
		elem([]string{"root", "b"}, 5),
	}
	sr, err := NewSizedResult(&sliceSource{elems: elems})
	require.NoError(t, err)

	got, ok := sr.Next()
	require.True(t, ok)
	require.Equal(t, uint64(8), got.Size)

	got, ok = sr.Next()
	require.True(t, ok)
	require.Equal(t, uint64(3), got.Size)

	got, ok = sr.Next()
	require.True(t, ok)
	require.Equal(t, uint64(5), got.Size)
}

// subtreeSum is the brute-force reference computation property 10
// describes: the sum of exclusive_size over a node and all descendants
// whose type_path is prefixed by its own.
func subtreeSum(elems []result.Element, i int) uint64 {
	total := elems[i].ExclusiveSize
	prefix := elems[i].TypePath
	for j := i + 1; j < len(elems); j++ {
		if len(elems[j].TypePath) <= len(prefix) {
			break
		}
		match := true
		for k := range prefix {
			if elems[j].TypePath[k] != prefix[k] {
				match = false
				break
			}
		}
		if !match {
			break
		}
		total += elems[j].ExclusiveSize
	}
	return total
}

// TestSizedResultProperty validates property 10 against randomly
// generated preorder traversals built from nested-depth sequences (a valid
// preorder never increases depth by more than one step at a time).
func TestSizedResultProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("size(n) equals exclusive_size summed over n and its descendants", prop.ForAll(
		func(depths []int, sizes []uint64) bool {
			n := len(depths)
			if n == 0 {
				return true
			}
			elems := make([]result.Element, n)
			var path []string
			prevDepth := -1
			for i, d := range depths {
				if d > prevDepth+1 {
					d = prevDepth + 1
				}
				if d < 0 {
					d = 0
				}
				if d <= prevDepth {
					path = path[:d]
				}
				path = append(path, "n")
				tp := append([]string(nil), path...)
				elems[i] = elem(tp, sizes[i%len(sizes)])
				prevDepth = d
			}

			sr, err := NewSizedResult(&sliceSource{elems: elems})
			if err != nil {
				return false
			}
			for i := 0; i < n; i++ {
				got, ok := sr.Next()
				if !ok {
					return false
				}
				if got.Size != subtreeSum(elems, i) {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(12, gen.IntRange(0, 4)),
		gen.SliceOfN(4, gen.UInt64Range(0, 1000)),
	))

	properties.TestingRun(t)
}
