package catalog

import "regexp"

// Codegen holds the text templates used to emit container-specific code.
// Each template has one positional slot, "%1%", substituted with the
// container's emitted type name at emission time . Handler is
// required only in typed-data-segment mode; CodegenHandlerMissing
// is raised lazily, at emission time, not at load time, since whether typed
// mode is in use isn't known until the emitter runs.
type Codegen struct {
	Decl    string
	Func    string
	Handler string
}

// ContainerInfo is an immutable catalog entry describing one container
// adapter, loaded from a descriptor file.
type ContainerInfo struct {
	TypeName string
	Matcher  *regexp.Regexp
	CType    ContainerType
	Header   string

	StubTemplateParams       []int
	UnderlyingContainerIndex int
	HasUnderlyingContainer   bool
	CaptureKeys              bool

	Codegen Codegen
}

// CatalogTypeName implements graph.ContainerInfoRef.
func (c *ContainerInfo) CatalogTypeName() string { return c.TypeName }

// StubsParam reports whether template-parameter index i should be replaced
// by TypeIdentifier with a Dummy/DummyAllocator.
func (c *ContainerInfo) StubsParam(i int) bool {
	for _, idx := range c.StubTemplateParams {
		if idx == i {
			return true
		}
	}
	return false
}

// Clone returns a deep-enough copy of c suitable for KeyCapture's per-site
// ContainerInfo specialization ("clones the ContainerInfo with
// capture_keys = true and registers the clone in the catalog").
func (c *ContainerInfo) Clone() *ContainerInfo {
	clone := *c
	clone.StubTemplateParams = append([]int(nil), c.StubTemplateParams...)
	return &clone
}

// defaultMatcher builds the "^name$|^name<.*>$" regex specifies
// when a descriptor doesn't supply an explicit matcher.
func defaultMatcher(typeName string) (*regexp.Regexp, error) {
	pattern := "^" + regexp.QuoteMeta(typeName) + "$|^" + regexp.QuoteMeta(typeName) + "<.*>$"
	return regexp.Compile(pattern)
}
