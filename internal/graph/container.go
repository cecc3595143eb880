package graph

// ContainerInfoRef is an opaque reference to a catalog entry. Package graph
// doesn't depend on package catalog (that would be a cycle: catalog
// descriptors don't need to know about graph.Node); IdentifyContainers in
// package transform sets this field via the interface below.
type ContainerInfoRef interface {
	// CatalogTypeName is the catalog entry's display name, used only for
	// diagnostics/printing inside this package.
	CatalogTypeName() string
}

// Container is a class whose semantics are delegated to a catalog entry
// rather than emitted member-by-member. Underlying points back at the
// original Class IdentifyContainers replaced, for passes that still need
// it (cleared by Prune).
type Container struct {
	id          NodeID
	DisplayName string

	Info ContainerInfoRef

	TemplateParams []TemplateParam
	size           uint64
	align          uint64

	Underlying *Class
}

func (c *Container) ID() NodeID        { return c.id }
func (c *Container) Kind() Kind        { return KindContainer }
func (c *Container) Name() string      { return c.DisplayName }
func (c *Container) Size() uint64      { return c.size }
func (c *Container) Align() uint64     { return c.align }
func (c *Container) Accept(v Visitor)  { v.VisitContainer(c) }
func (c *Container) SetSize(s uint64)  { c.size = s }
func (c *Container) SetAlign(a uint64) { c.align = a }
