package transform

import (
	"context"
	"sort"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// PaddingMemberName is the synthetic name AddPadding gives the members it
// inserts, so downstream consumers (the emitter) can skip them when walking
// a Class's real fields.
const PaddingMemberName = "__oi_padding"

const paddingMemberName = PaddingMemberName

// IsPaddingMember reports whether m is one of AddPadding's synthetic gap
// fillers rather than a real member.
func IsPaddingMember(m graph.Member) bool { return m.Name == PaddingMemberName }

// paddingInserter implements graph.Visitor, inserting explicit padding
// members between (and around) a Class's real members so the member list
// covers [0, size*8) contiguously. Unions are left untouched: their members
// overlap by design and padding has no meaning there.
type paddingInserter struct {
	*pass.RecursiveVisitor
	g   *graph.TypeGraph
	err error
}

// NewAddPadding returns the AddPadding pass.
func NewAddPadding() pass.Pass {
	return pass.Pass{Name: "AddPadding", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		p := &paddingInserter{g: g}
		p.RecursiveVisitor = pass.NewRecursiveVisitor(p)
		for _, root := range g.Roots() {
			root.Accept(p)
		}
		return p.err
	}}
}

func (p *paddingInserter) VisitClass(c *graph.Class) {
	if p.Tracker.Visit(c) {
		return
	}
	for _, par := range c.Parents {
		if par.Type != nil {
			par.Type.Accept(p.Self)
		}
	}
	for _, m := range c.Members {
		if m.Type != nil {
			m.Type.Accept(p.Self)
		}
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(p.Self)
		}
	}

	if c.IsUnion() || p.err != nil {
		return
	}

	sort.SliceStable(c.Members, func(i, j int) bool {
		return c.Members[i].BitOffset < c.Members[j].BitOffset
	})

	var out []graph.Member
	cursor := uint64(0)
	for _, m := range c.Members {
		if m.BitOffset > cursor {
			pad, err := p.pad(cursor, m.BitOffset-cursor)
			if err != nil {
				p.err = err
				return
			}
			out = append(out, pad)
		}
		out = append(out, m)
		memberBits := m.BitSize
		if memberBits == 0 {
			memberBits = m.Type.Size() * 8
		}
		end := m.BitOffset + memberBits
		if end > cursor {
			cursor = end
		}
	}
	classBits := c.Size() * 8
	if classBits > cursor {
		pad, err := p.pad(cursor, classBits-cursor)
		if err != nil {
			p.err = err
			return
		}
		out = append(out, pad)
	}
	c.Members = out
}

// pad builds one padding member covering [offsetBits, offsetBits+gapBits).
// Whole-byte gaps become an Array<Int8, n> member; a sub-byte remainder (the
// tail of a bitfield run) becomes a bitfield Int8 member instead.
func (p *paddingInserter) pad(offsetBits, gapBits uint64) (graph.Member, error) {
	i8, err := p.g.MakePrimitive(graph.Int8)
	if err != nil {
		return graph.Member{}, err
	}
	if offsetBits%8 == 0 && gapBits%8 == 0 {
		arr, err := p.g.MakeArray(i8, gapBits/8)
		if err != nil {
			return graph.Member{}, err
		}
		return graph.Member{Type: arr, Name: paddingMemberName, BitOffset: offsetBits}, nil
	}
	return graph.Member{Type: i8, Name: paddingMemberName, BitOffset: offsetBits, BitSize: gapBits}, nil
}
