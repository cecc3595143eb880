package emitter

import (
	"fmt"
	"strings"

	"github.com/facebookexperimental/object-introspection-sub001/internal/catalog"
	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/facebookexperimental/object-introspection-sub001/internal/wiretype"
)

// Emitter renders a *graph.TypeGraph's final_types into the C++ text
// artifact describes.
type Emitter struct {
	opts Options
	wire map[graph.NodeID]*wiretype.Type
}

// New returns an Emitter configured by opts.
func New(opts Options) *Emitter {
	return &Emitter{opts: opts, wire: make(map[graph.NodeID]*wiretype.Type)}
}

// Emit renders g's final_types (must already have TopoSort/Prune applied —
// see transform.StandardPipeline) against cat into a single text Artifact.
func (e *Emitter) Emit(g *graph.TypeGraph, cat *catalog.Catalog) (*Artifact, error) {
	if len(g.Roots()) == 0 {
		return nil, fmt.Errorf("emitter: graph has no roots")
	}
	root := g.Roots()[0]
	types := g.FinalTypes
	if types == nil {
		types = g.Nodes()
	}

	var sections []string
	sections = append(sections, e.renderIncludes(types))
	sections = append(sections, e.renderForwardDecls(types))

	classDecls, err := e.renderClassDecls(types)
	if err != nil {
		return nil, err
	}
	sections = append(sections, classDecls)

	containerDecls, err := e.renderContainerDecls(types)
	if err != nil {
		return nil, err
	}
	sections = append(sections, containerDecls)

	handlers, err := e.renderHandlers(types)
	if err != nil {
		return nil, err
	}
	sections = append(sections, handlers)

	rootTypeName := e.opts.RootTypeName
	if rootTypeName == "" {
		rootTypeName = rootFQName(root)
	}
	cookie := newCookie()
	if e.opts.Cookie != nil {
		cookie = *e.opts.Cookie
	}
	wrapper, err := e.buildTopLevelWrapper(typeRef(root), rootTypeName, cookie)
	if err != nil {
		return nil, err
	}
	sections = append(sections, wrapper)

	artifact := &Artifact{Source: strings.Join(sections, "\n")}
	if e.opts.Mode == ModeTyped {
		artifact.Descriptor = e.wireTypeOf(root)
	}
	return artifact, nil
}

func rootFQName(n graph.Node) string {
	if c, ok := n.(*graph.Class); ok && c.FullyQualifiedName != "" {
		return c.FullyQualifiedName
	}
	return n.Name()
}

func (e *Emitter) renderIncludes(types []graph.Node) string {
	var b strings.Builder
	for _, inc := range e.includesFor(types) {
		fmt.Fprintf(&b, "#include %s\n", inc)
	}
	return b.String()
}

func (e *Emitter) renderForwardDecls(types []graph.Node) string {
	var b strings.Builder
	for _, n := range types {
		if decl := e.forwardDecl(n); decl != "" {
			b.WriteString(decl)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (e *Emitter) renderClassDecls(types []graph.Node) (string, error) {
	var b strings.Builder
	for _, n := range types {
		c, ok := n.(*graph.Class)
		if !ok {
			continue
		}
		decl, err := e.buildClassDecl(c)
		if err != nil {
			return "", err
		}
		b.WriteString(decl)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (e *Emitter) renderContainerDecls(types []graph.Node) (string, error) {
	var b strings.Builder
	for _, n := range types {
		cont, ok := n.(*graph.Container)
		if !ok {
			continue
		}
		decl, err := e.buildContainerDecl(cont)
		if err != nil {
			return "", err
		}
		b.WriteString(decl)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// renderHandlers emits the per-type handler functions in the configured
// mode, plus one shared pointer handler if any Pointer node is reachable.
func (e *Emitter) renderHandlers(types []graph.Node) (string, error) {
	var b strings.Builder
	sawPointer := false
	renderedPointeePairs := make(map[string]bool)

	for _, n := range types {
		switch t := n.(type) {
		case *graph.Class:
			h, err := e.buildOneClassHandler(t)
			if err != nil {
				return "", err
			}
			b.WriteString(h)
			b.WriteByte('\n')
		case *graph.Container:
			if e.opts.Mode == ModeTyped {
				h, err := e.buildContainerHandlerTyped(t)
				if err != nil {
					return "", err
				}
				b.WriteString(h)
				b.WriteByte('\n')
			}
			// Untyped containers are fully handled by their decl/func
			// expansion in renderContainerDecls; no separate handler needed.
		case *graph.Pointer:
			sawPointer = true
			if e.opts.Mode == ModeTyped {
				key := typeRef(t.Pointee)
				if !renderedPointeePairs[key] {
					renderedPointeePairs[key] = true
					h, err := e.buildPointerHandlerTyped(t)
					if err != nil {
						return "", err
					}
					b.WriteString(h)
					b.WriteByte('\n')
				}
			}
		}
	}

	if sawPointer && e.opts.Mode == ModeUntyped {
		b.WriteString(pointerHandlerUntyped)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func (e *Emitter) buildOneClassHandler(c *graph.Class) (string, error) {
	dispatching := e.opts.Polymorphic && c.Virtuality != 0
	if e.opts.Mode == ModeTyped {
		// Polymorphic dispatch in typed mode still resolves to a concrete
		// TypeHandler specialization; this repo only emits the untyped
		// dispatch wrapper (doesn't define a typed-mode
		// variant), so typed mode always emits the plain specialization.
		return e.buildClassHandlerTyped(c)
	}

	if !dispatching {
		return e.buildClassHandlerUntyped(c, "")
	}

	concrete, err := e.buildClassHandlerUntyped(c, "getSizeTypeConcrete")
	if err != nil {
		return "", err
	}
	dispatch, err := e.buildPolyDispatch(c)
	if err != nil {
		return "", err
	}
	return concrete + "\n" + dispatch, nil
}
