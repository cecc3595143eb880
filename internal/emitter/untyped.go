package emitter

import (
	"fmt"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/transform"
)

// untypedHandlerData backs templates/handler_untyped.tmpl.
type untypedHandlerData struct {
	TypeRef  string
	FuncName string
	Lines    []string
}

// isScalar reports whether n is written directly (no recursive getSizeType
// call needed) in untyped mode.
func isScalar(n graph.Node) bool {
	switch n.(type) {
	case *graph.Primitive, *graph.Enum:
		return true
	default:
		return false
	}
}

// memberAccessLines builds the body lines for one Class member in untyped
// mode ("for each non-padding member m, writes a trace tag and
// recurses via getSizeType(t.m, out)").
func memberAccessLines(m graph.Member) []string {
	access := fmt.Sprintf("t.%s", m.Name)
	lines := []string{fmt.Sprintf("out += oi::trace_tag(%q);", m.Name)}
	switch t := m.Type.(type) {
	case *graph.Primitive, *graph.Enum:
		lines = append(lines, fmt.Sprintf("out += sizeof(%s);", access))
	case *graph.Incomplete:
		lines = append(lines, fmt.Sprintf("out += sizeof(&%s);", access))
	case *graph.Array:
		if isScalar(t.Element) {
			lines = append(lines, fmt.Sprintf("out += sizeof(%s);", access))
		} else {
			lines = append(lines, fmt.Sprintf(
				"for (size_t __oi_i = 0; __oi_i < %d; __oi_i++) { getSizeType(%s[__oi_i], out); }", t.Length, access))
		}
	default:
		lines = append(lines, fmt.Sprintf("getSizeType(%s, out);", access))
	}
	return lines
}

// buildClassHandlerUntyped builds the free getSizeType(const T&, size_t&)
// function for a non-container Class. funcName overrides the generated
// function's name (a polymorphic base's own member walker is
// named getSizeTypeConcrete so the dispatch wrapper can call it by name);
// an empty funcName keeps the default getSizeType.
func (e *Emitter) buildClassHandlerUntyped(c *graph.Class, funcName string) (string, error) {
	data := untypedHandlerData{TypeRef: c.Name(), FuncName: funcName}
	for _, m := range c.Members {
		if transform.IsPaddingMember(m) {
			continue
		}
		data.Lines = append(data.Lines, memberAccessLines(m)...)
	}
	return emitterTemplates.Render(handlerUntypedT, data)
}

// pointerHandlerUntyped is the single generic pointer handler shared by
// every Pointer node ("stores the pointer value, adds it to a
// de-duplication set, and recurses only on first visit; pointers-to-
// incomplete record only the address").
const pointerHandlerUntyped = `template <typename T>
void getSizeType(T* const& t, size_t& out) {
  out += sizeof(t);
  if (t != nullptr && oi::seen_pointers.insert(reinterpret_cast<uintptr_t>(t)).second) {
    getSizeType(*t, out);
  }
}
`
