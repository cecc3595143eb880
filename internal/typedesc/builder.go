package typedesc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
)

var primitiveByKeyword = map[string]graph.PrimitiveKind{
	"int8": graph.Int8, "int16": graph.Int16, "int32": graph.Int32, "int64": graph.Int64,
	"uint8": graph.UInt8, "uint16": graph.UInt16, "uint32": graph.UInt32, "uint64": graph.UInt64,
	"float32": graph.Float32, "float64": graph.Float64, "float80": graph.Float80, "float128": graph.Float128,
	"bool": graph.Bool, "uintptr": graph.UIntPtr, "stubbedpointer": graph.StubbedPointer, "void": graph.Void,
}

func classKindOf(kind string) graph.ClassKind {
	switch kind {
	case "union":
		return graph.ClassKindUnion
	case "class":
		return graph.ClassKindClass
	default:
		return graph.ClassKindStruct
	}
}

func nameOrDefault(name, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}

// builder carries the in-progress map of resolved nodes, keyed by the
// description's type-entry names, plus a "currently resolving" set that
// catches an unsupported cycle through a non-aggregate kind (e.g. a
// typedef referencing itself) rather than recursing forever.
type builder struct {
	g        *graph.TypeGraph
	desc     *Description
	named    map[string]graph.Node
	building map[string]bool
}

// Build constructs a *graph.TypeGraph from desc, returning the graph and
// the resolved root node (already registered via g.AddRoot).
func Build(desc *Description) (*graph.TypeGraph, graph.Node, error) {
	g := graph.NewTypeGraph(0)
	b := &builder{g: g, desc: desc, named: make(map[string]graph.Node), building: make(map[string]bool)}

	// Phase 1: shells for every aggregate/enum entry, so forward and
	// cyclic references (e.g. a linked-list node pointing at itself)
	// resolve to a stable identity before their bodies are filled in.
	for name, td := range desc.Types {
		switch td.Kind {
		case "struct", "class", "union":
			c, err := g.MakeClass(classKindOf(td.Kind), nameOrDefault(td.Name, name), td.FQName, td.Size)
			if err != nil {
				return nil, nil, fmt.Errorf("typedesc: %s: %w", name, err)
			}
			c.Packed = td.Packed
			c.Virtuality = td.Virtuality
			b.named[name] = c
		case "enum":
			e, err := g.MakeEnum(nameOrDefault(td.Name, name), td.Size)
			if err != nil {
				return nil, nil, fmt.Errorf("typedesc: %s: %w", name, err)
			}
			b.named[name] = e
		}
	}

	// Phase 2: fill in bodies, which may reference any shell from phase 1
	// or trigger lazy construction of non-aggregate entries.
	for name, td := range desc.Types {
		switch td.Kind {
		case "struct", "class", "union":
			c := b.named[name].(*graph.Class)
			for _, p := range td.Parents {
				pt, err := b.resolve(p.Type)
				if err != nil {
					return nil, nil, err
				}
				c.Parents = append(c.Parents, graph.Parent{Type: pt, BitOffset: p.BitOffset})
			}
			for _, m := range td.Members {
				mt, err := b.resolve(m.Type)
				if err != nil {
					return nil, nil, err
				}
				c.Members = append(c.Members, graph.Member{
					Type: mt, Name: m.Name, BitOffset: m.BitOffset,
					BitSize: m.BitSize, ExplicitAlign: m.ExplicitAlign,
				})
			}
			for _, f := range td.Functions {
				c.Functions = append(c.Functions, graph.Function{Name: f.Name, Virtuality: f.Virtuality})
			}
			for _, tp := range td.TemplateParams {
				param, err := b.resolveTemplateParam(tp)
				if err != nil {
					return nil, nil, err
				}
				c.TemplateParams = append(c.TemplateParams, param)
			}
		case "enum":
			e := b.named[name].(*graph.Enum)
			if len(td.EnumValues) > 0 {
				e.Enumerators = make(map[int64]string, len(td.EnumValues))
				for valStr, enumeratorName := range td.EnumValues {
					v, err := strconv.ParseInt(valStr, 10, 64)
					if err != nil {
						return nil, nil, fmt.Errorf("typedesc: %s: bad enum value %q: %w", name, valStr, err)
					}
					e.Enumerators[v] = enumeratorName
				}
			}
		}
	}

	root, err := b.resolve(desc.Root)
	if err != nil {
		return nil, nil, err
	}
	g.AddRoot(root)
	return g, root, nil
}

func (b *builder) resolveTemplateParam(tp TemplateParamDesc) (graph.TemplateParam, error) {
	if tp.Type == "" {
		return graph.TemplateParam{Value: tp.Value}, nil
	}
	t, err := b.resolve(tp.Type)
	if err != nil {
		return graph.TemplateParam{}, err
	}
	var quals graph.QualifierSet
	if tp.Const {
		quals = graph.QualifierSet(graph.QualifierConst)
	}
	return graph.TemplateParam{Type: t, Qualifiers: quals}, nil
}

// resolve returns the node for a type-reference string: a primitive
// keyword, an "incomplete:<name>" literal, or a key into the description's
// Types map (building it on first use and memoizing the result).
func (b *builder) resolve(ref string) (graph.Node, error) {
	if kind, ok := primitiveByKeyword[ref]; ok {
		return b.g.MakePrimitive(kind)
	}
	if name, ok := strings.CutPrefix(ref, "incomplete:"); ok {
		return b.g.MakeIncomplete(name)
	}
	if n, ok := b.named[ref]; ok {
		return n, nil
	}

	td, ok := b.desc.Types[ref]
	if !ok {
		return nil, fmt.Errorf("typedesc: unknown type reference %q", ref)
	}
	if b.building[ref] {
		return nil, fmt.Errorf("typedesc: unsupported cycle through non-aggregate type %q", ref)
	}
	b.building[ref] = true
	defer delete(b.building, ref)

	switch td.Kind {
	case "array":
		elem, err := b.resolve(td.Element)
		if err != nil {
			return nil, err
		}
		n, err := b.g.MakeArray(elem, td.Length)
		if err != nil {
			return nil, err
		}
		b.named[ref] = n
		return n, nil
	case "typedef":
		u, err := b.resolve(td.Underlying)
		if err != nil {
			return nil, err
		}
		n, err := b.g.MakeTypedef(nameOrDefault(td.Name, ref), u)
		if err != nil {
			return nil, err
		}
		b.named[ref] = n
		return n, nil
	case "pointer":
		u, err := b.resolve(td.Underlying)
		if err != nil {
			return nil, err
		}
		n, err := b.g.MakePointer(u)
		if err != nil {
			return nil, err
		}
		b.named[ref] = n
		return n, nil
	case "reference":
		u, err := b.resolve(td.Underlying)
		if err != nil {
			return nil, err
		}
		n, err := b.g.MakeReference(u)
		if err != nil {
			return nil, err
		}
		b.named[ref] = n
		return n, nil
	case "incomplete":
		n, err := b.g.MakeIncomplete(nameOrDefault(td.Name, ref))
		if err != nil {
			return nil, err
		}
		b.named[ref] = n
		return n, nil
	case "struct", "class", "union", "enum":
		return nil, fmt.Errorf("typedesc: %q missing its phase-1 shell", ref)
	default:
		return nil, fmt.Errorf("typedesc: %q: unknown kind %q", ref, td.Kind)
	}
}
