package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/pass"
)

// nameGen implements graph.Visitor, assigning globally unique names to every
// Class/Container/Typedef/Enum node reachable from the roots. It walks
// bottom-up (children renamed before parents) so a Container's rebuilt
// display name can quote its already-renamed template-parameter types.
type nameGen struct {
	*pass.RecursiveVisitor
	counters map[string]int
}

// NewNameGen returns the NameGen pass.
func NewNameGen() pass.Pass {
	return pass.Pass{Name: "NameGen", Run: func(ctx context.Context, g *graph.TypeGraph) error {
		n := &nameGen{counters: make(map[string]int)}
		n.RecursiveVisitor = pass.NewRecursiveVisitor(n)
		for _, root := range g.Roots() {
			root.Accept(n)
		}
		return nil
	}}
}

// stripTemplateArgs drops a trailing "<...>" template-argument suffix,
// leaving the bare base name NameGen suffixes with its uniqueness counter.
func stripTemplateArgs(name string) string {
	if idx := strings.IndexByte(name, '<'); idx >= 0 {
		return strings.TrimSpace(name[:idx])
	}
	return name
}

func (n *nameGen) nextUnique(base string) string {
	if base == "" {
		base = "__oi_anon"
	}
	i := n.counters[base]
	n.counters[base] = i + 1
	return fmt.Sprintf("%s_%d", base, i)
}

func (n *nameGen) VisitClass(c *graph.Class) {
	if n.Tracker.Visit(c) {
		return
	}
	for _, p := range c.Parents {
		if p.Type != nil {
			p.Type.Accept(n.Self)
		}
	}
	for _, m := range c.Members {
		if m.Type != nil {
			m.Type.Accept(n.Self)
		}
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(n.Self)
		}
	}

	c.ClassName = n.nextUnique(stripTemplateArgs(c.ClassName))
	dedupeMemberNames(c.Members)
}

func (n *nameGen) VisitContainer(c *graph.Container) {
	if n.Tracker.Visit(c) {
		return
	}
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			tp.Type.Accept(n.Self)
		}
	}

	base := stripTemplateArgs(c.DisplayName)
	if c.Info != nil {
		base = stripTemplateArgs(c.Info.CatalogTypeName())
	}
	unique := n.nextUnique(base)

	params := make([]string, 0, len(c.TemplateParams))
	for _, tp := range c.TemplateParams {
		if tp.IsType() {
			s := tp.Type.Name()
			if tp.Qualifiers.Has(graph.QualifierConst) {
				s = "const " + s
			}
			params = append(params, s)
		} else {
			params = append(params, tp.Value)
		}
	}
	if len(params) == 0 {
		c.DisplayName = unique
		return
	}
	c.DisplayName = unique + "<" + strings.Join(params, ", ") + ">"
}

func (n *nameGen) VisitTypedef(t *graph.Typedef) {
	if n.Tracker.Visit(t) {
		return
	}
	if t.Underlying != nil {
		t.Underlying.Accept(n.Self)
	}
	t.TypedefName = n.nextUnique(stripTemplateArgs(t.TypedefName))
}

func (n *nameGen) VisitEnum(e *graph.Enum) {
	e.EnumName = n.nextUnique(stripTemplateArgs(e.EnumName))
}

// dedupeMemberNames suffixes repeated member names within one class so that
// "x", "x" becomes "x", "x_1" ("Class member names are also
// deduplicated by suffixing _<i>").
func dedupeMemberNames(members []graph.Member) {
	seen := make(map[string]int)
	for i := range members {
		name := members[i].Name
		if name == "" {
			continue
		}
		count := seen[name]
		seen[name] = count + 1
		if count > 0 {
			members[i].Name = fmt.Sprintf("%s_%d", name, count)
		}
	}
}
