package catalog

// Catalog is an ordered collection of ContainerInfo entries. Matching scans
// in catalog (insertion) order and returns the first hit —:
// "callers must not rely on priority beyond source order."
type Catalog struct {
	entries []*ContainerInfo
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Add appends info to the catalog, preserving source order.
func (c *Catalog) Add(info *ContainerInfo) { c.entries = append(c.entries, info) }

// Entries returns the catalog's entries in source order.
func (c *Catalog) Entries() []*ContainerInfo { return c.entries }

// Match returns the first entry whose matcher matches fqName.
func (c *Catalog) Match(fqName string) (*ContainerInfo, bool) {
	for _, e := range c.entries {
		if e.Matcher != nil && e.Matcher.MatchString(fqName) {
			return e, true
		}
	}
	return nil, false
}

// RegisterClone appends a cloned entry (used by KeyCapture to register a
// capture_keys=true specialization of an existing container without
// mutating the original catalog entry other sites still match against).
func (c *Catalog) RegisterClone(info *ContainerInfo) *ContainerInfo {
	clone := info.Clone()
	c.Add(clone)
	return clone
}
