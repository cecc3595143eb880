package emitter

import (
	"fmt"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/transform"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
)

// wireTypeOf maps a graph node to the wiretype.Type shape its typed-mode
// handler writes. Results are memoized per NodeID in e.wire so
// that two references to the same Class share one Type value, which is what
// Equal-based isomorphism checking expects.
//
// Container internals are opaque catalog templates in this repo (no dy
// lowering is derived from their handler text), so a container's wire shape
// is approximated as a leading VarInt capacity followed by a length-prefixed
// List of its first type template parameter's shape — Pair(VarInt, List(elem))
// — so capacity and length are independently meaningful fields rather than
// the same number read twice, falling back to a bare VarInt for containers
// with no type template parameter (e.g. a monostate-like adapter).
func (e *Emitter) wireTypeOf(n graph.Node) *wiretype.Type {
	if n == nil {
		return wiretype.Unit()
	}
	if t, ok := e.wire[n.ID()]; ok {
		return t
	}
	// Reserve before recursing so a (already-broken-by-CycleFinder) cycle
	// resolves to Unit rather than looping.
	e.wire[n.ID()] = wiretype.Unit()

	var t *wiretype.Type
	switch v := n.(type) {
	case *graph.Primitive, *graph.Enum:
		t = wiretype.VarIntType()
	case *graph.Class:
		t = e.foldClassWireType(v)
	case *graph.Container:
		t = e.containerWireType(v)
	case *graph.Array:
		t = wiretype.ListType(e.wireTypeOf(v.Element))
	case *graph.Typedef:
		t = e.wireTypeOf(v.Underlying)
	case *graph.Pointer:
		t = wiretype.PairType(wiretype.VarIntType(), wiretype.SumType(wiretype.Unit(), e.wireTypeOf(v.Pointee)))
	case *graph.Reference:
		t = e.wireTypeOf(v.Pointee)
	case *graph.Incomplete:
		t = wiretype.VarIntType()
	case *graph.Dummy, *graph.DummyAllocator:
		t = wiretype.Unit()
	case *graph.CaptureKeys:
		t = e.wireTypeOf(v.Inner)
	case *graph.CycleBreaker:
		t = wiretype.VarIntType()
	default:
		t = wiretype.Unit()
	}
	e.wire[n.ID()] = t
	return t
}

func (e *Emitter) foldClassWireType(c *graph.Class) *wiretype.Type {
	var members []*wiretype.Type
	for _, m := range c.Members {
		if transform.IsPaddingMember(m) {
			continue
		}
		members = append(members, e.wireTypeOf(m.Type))
	}
	return wiretype.Fold(members)
}

func (e *Emitter) containerWireType(c *graph.Container) *wiretype.Type {
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			return wiretype.PairType(wiretype.VarIntType(), wiretype.ListType(e.wireTypeOf(tp.Type)))
		}
	}
	return wiretype.VarIntType()
}

// typeExprOf renders the wiretype.Type tree as the st::* C++ template
// expression the handler's `using type = ...;` declares.
func typeExprOf(t *wiretype.Type) string {
	switch t.Kind {
	case wiretype.KindUnit:
		return "st::Unit"
	case wiretype.KindVarInt:
		return "st::VarInt"
	case wiretype.KindPair:
		return fmt.Sprintf("st::Pair<%s, %s>", typeExprOf(t.First), typeExprOf(t.Second))
	case wiretype.KindList:
		return fmt.Sprintf("st::List<%s>", typeExprOf(t.Elem))
	case wiretype.KindSum:
		parts := make([]string, len(t.Variants))
		for i, v := range t.Variants {
			parts[i] = typeExprOf(v)
		}
		return fmt.Sprintf("st::Sum<%s>", strings.Join(parts, ", "))
	default:
		return "st::Unit"
	}
}

type typedHandlerData struct {
	TypeRef       string
	TypeExpr      string
	DelegateLines []string
}

// buildClassHandlerTyped builds the TypeHandler<DB, T> specialization for a
// non-container Class.
func (e *Emitter) buildClassHandlerTyped(c *graph.Class) (string, error) {
	var members []graph.Member
	for _, m := range c.Members {
		if !transform.IsPaddingMember(m) {
			members = append(members, m)
		}
	}
	data := typedHandlerData{
		TypeRef:  c.Name(),
		TypeExpr: typeExprOf(e.foldClassWireType(c)),
	}
	for _, m := range members {
		access := fmt.Sprintf("t.%s", m.Name)
		if isScalar(m.Type) {
			data.DelegateLines = append(data.DelegateLines,
				fmt.Sprintf("out.template delegate([&](auto ret) { ret.write_varint(%s); });", access))
			continue
		}
		data.DelegateLines = append(data.DelegateLines,
			fmt.Sprintf("out.template delegate([&](auto ret) { TypeHandler<DB, %s>::getSizeType(%s, ret); });",
				typeRef(m.Type), access))
	}
	return emitterTemplates.Render(handlerTypedT, data)
}

// buildContainerHandlerTyped expands the catalog's required Handler
// template ("must exist in this mode; if missing, fail
// CodegenHandlerMissing").
func (e *Emitter) buildContainerHandlerTyped(c *graph.Container) (string, error) {
	info, ok := c.Info.(*catalog.ContainerInfo)
	if !ok {
		return "", fmt.Errorf("emitter: container %q has no catalog info", c.DisplayName)
	}
	if info.Codegen.Handler == "" {
		return "", fmt.Errorf("%w: %s", ErrHandlerMissing, info.TypeName)
	}
	return expandContainerTemplate(info.Codegen.Handler, c.DisplayName), nil
}

type pointerHandlerData struct {
	PointeeRef string
}

func (e *Emitter) buildPointerHandlerTyped(p *graph.Pointer) (string, error) {
	return emitterTemplates.Render(pointerHandlerT, pointerHandlerData{PointeeRef: typeRef(p.Pointee)})
}
