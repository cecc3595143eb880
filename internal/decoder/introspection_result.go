package decoder

import (
	"github.com/facebookexperimental/object-introspection-sub001/internal/result"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wire"
)

// instKind tags one frame of IntrospectionResult's explicit stack, whose
// entries are PopTypePath, Repeat(n, Field), or Field.
type instKind int

const (
	instField instKind = iota
	instPopTypePath
	instRepeat
)

type inst struct {
	kind    instKind
	field   *Field
	repeatN int
}

// IntrospectionResult is a single-pass, forward-only preorder walk over a
// wire byte stream driven by a Field tree, producing one result.Element per
// Field node visited. It is not Go's iter.Seq: the original C++ iterator's
// equality operator is only meaningful for a manual cursor, so this exposes
// Next() rather than hiding one behind range-over-func.
type IntrospectionResult struct {
	cur      *wire.Cursor
	stack    []inst
	typePath []string
	seenPtrs map[uint64]bool
}

// NewIntrospectionResult starts a traversal of cur's bytes against root.
func NewIntrospectionResult(cur *wire.Cursor, root *Field) *IntrospectionResult {
	return &IntrospectionResult{
		cur:      cur,
		stack:    []inst{{kind: instField, field: root}},
		seenPtrs: make(map[uint64]bool),
	}
}

// Next advances the traversal and returns the next Element, or ok=false
// once the stack is exhausted. The sequence is finite and matches a
// preorder walk of the reconstructed tree.
func (ir *IntrospectionResult) Next() (elem result.Element, ok bool, err error) {
	for len(ir.stack) > 0 {
		top := ir.stack[len(ir.stack)-1]
		ir.stack = ir.stack[:len(ir.stack)-1]

		switch top.kind {
		case instPopTypePath:
			if len(ir.typePath) > 0 {
				ir.typePath = ir.typePath[:len(ir.typePath)-1]
			}
			continue

		case instRepeat:
			if top.repeatN > 0 {
				ir.stack = append(ir.stack, inst{kind: instRepeat, field: top.field, repeatN: top.repeatN - 1})
				ir.stack = append(ir.stack, inst{kind: instField, field: top.field})
			}
			continue

		case instField:
			e, err := ir.visitField(top.field)
			if err != nil {
				return result.Element{}, false, err
			}
			return e, true, nil
		}
	}
	return result.Element{}, false, nil
}

func (ir *IntrospectionResult) visitField(f *Field) (result.Element, error) {
	ir.typePath = append(ir.typePath, f.Name)
	ir.stack = append(ir.stack, inst{kind: instPopTypePath})

	elem := result.Element{
		Name:        f.Name,
		TypePath:    append([]string(nil), ir.typePath...),
		TypeNames:   f.TypeNames,
		StaticSize:  f.StaticSize,
		IsPrimitive: f.IsPrimitive,
	}

	switch f.Kind {
	case FieldScalar:
		v, _, err := wire.DecodeVarInt(ir.cur)
		if err != nil {
			return result.Element{}, err
		}
		elem.Data = &result.Data{Kind: result.DataScalar, Scalar: v}
		if f.EnumNames != nil {
			if name, ok := f.EnumNames[v]; ok {
				elem.Data.Str = name
			}
		}

	case FieldPointer:
		addr, _, err := wire.DecodeVarInt(ir.cur)
		if err != nil {
			return result.Element{}, err
		}
		elem.Pointer = &addr
		tag, _, err := wire.DecodeVarInt(ir.cur)
		if err != nil {
			return result.Element{}, err
		}
		if tag == 1 && !ir.seenPtrs[addr] {
			ir.seenPtrs[addr] = true
			if len(f.Fields) > 0 {
				ir.stack = append(ir.stack, inst{kind: instField, field: f.Fields[0]})
			}
		}

	case FieldContainer:
		capacity, _, err := wire.DecodeVarInt(ir.cur)
		if err != nil {
			return result.Element{}, err
		}
		n, _, err := wire.DecodeVarInt(ir.cur)
		if err != nil {
			return result.Element{}, err
		}
		elem.Container = &result.ContainerStats{Length: n, Capacity: capacity}
		if f.IsSet {
			isSet := true
			elem.IsSet = &isSet
		}
		if f.ElemField != nil && n > 0 {
			ir.stack = append(ir.stack, inst{kind: instRepeat, field: f.ElemField, repeatN: int(n) - 1})
			ir.stack = append(ir.stack, inst{kind: instField, field: f.ElemField})
		}

	case FieldAggregate:
		for i := len(f.Fields) - 1; i >= 0; i-- {
			ir.stack = append(ir.stack, inst{kind: instField, field: f.Fields[i]})
		}
	}

	return elem, nil
}
