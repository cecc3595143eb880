package emitter

import (
	"fmt"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/transform"
)

// baseIncludes is the fixed include set every artifact carries: one
// line per container's header plus these.
var baseIncludes = []string{
	"<cstddef>",
	"<cstdint>",
	"<cstring>",
}

// typeRef returns the C++ type expression for n, as it should appear in a
// member declaration, function signature, or template argument.
func typeRef(n graph.Node) string {
	switch t := n.(type) {
	case *graph.Primitive:
		return t.Name()
	case *graph.Class:
		return t.Name()
	case *graph.Container:
		return t.DisplayName
	case *graph.Enum:
		return t.Name()
	case *graph.Array:
		return fmt.Sprintf("std::array<%s, %d>", typeRef(t.Element), t.Length)
	case *graph.Typedef:
		return t.Name()
	case *graph.Pointer:
		return typeRef(t.Pointee) + "*"
	case *graph.Reference:
		return typeRef(t.Pointee) + "&"
	case *graph.Incomplete:
		return t.Name()
	case *graph.Dummy:
		return fmt.Sprintf("std::array<uint8_t, %d>", t.Size())
	case *graph.DummyAllocator:
		return fmt.Sprintf("std::array<uint8_t, %d>", t.Size())
	case *graph.CaptureKeys:
		return typeRef(t.Inner)
	case *graph.CycleBreaker:
		return typeRef(t.Target)
	default:
		return "void"
	}
}

// classDeclData backs templates/class_decl.tmpl.
type classDeclData struct {
	Kind    string
	Name    string
	Packed  bool
	Members []memberDeclData
	Asserts []string
}

type memberDeclData struct {
	TypeName string
	Name     string
	BitSize  uint64 // 0 unless this is a bitfield
}

func classKindKeyword(c *graph.Class) string {
	switch c.ClassKind() {
	case graph.ClassKindUnion:
		return "union"
	default:
		return "struct"
	}
}

// buildClassDecl renders the full definition plus static_asserts for a
// non-container Class (outputs 3-4: full definitions with
// members in offset order, static_assert of sizeof and member offsets).
// Bitfield members (BitSize != 0) are skipped from the offset asserts:
// `offsetof` isn't meaningful for a sub-byte field, only AddPadding's own
// layout accounting (already verified by AlignmentCalc) covers them.
func (e *Emitter) buildClassDecl(c *graph.Class) (string, error) {
	data := classDeclData{
		Kind:   classKindKeyword(c),
		Name:   c.Name(),
		Packed: c.Packed,
	}
	for _, m := range c.Members {
		data.Members = append(data.Members, memberDeclData{TypeName: typeRef(m.Type), Name: m.Name, BitSize: m.BitSize})
		if transform.IsPaddingMember(m) {
			continue
		}
		if m.BitSize == 0 {
			data.Asserts = append(data.Asserts, fmt.Sprintf(
				"static_assert(offsetof(%s, %s) == %d);", c.Name(), m.Name, m.BitOffset/8))
		}
	}
	data.Asserts = append(data.Asserts, fmt.Sprintf("static_assert(sizeof(%s) == %d);", c.Name(), c.Size()))
	return emitterTemplates.Render(classDeclT, data)
}

// containerDeclData backs templates/container_decl.tmpl.
type containerDeclData struct {
	DisplayName string
	Decl        string
	Func        string
}

// expandContainerTemplate substitutes the catalog's "%1%" placeholder with
// the container's emitted display name .
func expandContainerTemplate(tmpl, displayName string) string {
	return strings.ReplaceAll(tmpl, "%1%", displayName)
}

func (e *Emitter) buildContainerDecl(c *graph.Container) (string, error) {
	info, ok := c.Info.(*catalog.ContainerInfo)
	if !ok {
		return "", fmt.Errorf("emitter: container %q has no catalog info", c.DisplayName)
	}
	data := containerDeclData{
		DisplayName: c.DisplayName,
		Decl:        expandContainerTemplate(info.Codegen.Decl, c.DisplayName),
		Func:        expandContainerTemplate(info.Codegen.Func, c.DisplayName),
	}
	return emitterTemplates.Render(containerDeclT, data)
}

func enumUnderlyingInt(size uint64) string {
	switch size {
	case 1:
		return "uint8_t"
	case 2:
		return "uint16_t"
	case 4:
		return "uint32_t"
	default:
		return "uint64_t"
	}
}

func (e *Emitter) forwardDecl(n graph.Node) string {
	switch t := n.(type) {
	case *graph.Class:
		return fmt.Sprintf("%s %s;", classKindKeyword(t), t.Name())
	case *graph.Enum:
		return fmt.Sprintf("using %s = %s;", t.Name(), enumUnderlyingInt(t.Size()))
	case *graph.Typedef:
		return fmt.Sprintf("using %s = %s;", t.Name(), typeRef(t.Underlying))
	case *graph.Incomplete:
		return fmt.Sprintf("struct %s;", t.Name())
	default:
		return ""
	}
}

func (e *Emitter) includesFor(types []graph.Node) []string {
	seen := make(map[string]bool)
	var out []string
	for _, inc := range baseIncludes {
		if !seen[inc] {
			seen[inc] = true
			out = append(out, inc)
		}
	}
	for _, n := range types {
		cont, ok := n.(*graph.Container)
		if !ok {
			continue
		}
		info, ok := cont.Info.(*catalog.ContainerInfo)
		if !ok || info.Header == "" || seen[info.Header] {
			continue
		}
		seen[info.Header] = true
		out = append(out, info.Header)
	}
	return out
}
