package catalog

import (
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

// descriptorFile mirrors the [info]/[codegen] shape specifies.
// Fields are validated by hand after unmarshaling rather than via struct
// tags, since "missing" and "present but empty" need different handling for
// a couple of fields (matcher in particular).
type descriptorFile struct {
	Info struct {
		TypeName                 string `toml:"type_name"`
		CType                    string `toml:"ctype"`
		Header                   string `toml:"header"`
		StubTemplateParams       []int  `toml:"stub_template_params"`
		UnderlyingContainerIndex *int   `toml:"underlying_container_index"`
		Matcher                  string `toml:"matcher"`
	} `toml:"info"`
	Codegen struct {
		Func    string `toml:"func"`
		Decl    string `toml:"decl"`
		Handler string `toml:"handler"`
	} `toml:"codegen"`
}

// LoadFile parses one container descriptor TOML file. Required fields:
// info.type_name, info.ctype, info.header, codegen.func, codegen.decl.
// codegen.handler is not validated here — whether it's required depends on
// the emitter's mode, checked lazily at emission time against
// CodegenHandlerMissing.
func LoadFile(path string) (*ContainerInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapDescriptorErr("read %s: %v", path, err)
	}
	return Parse(data, path)
}

// Parse decodes one descriptor document (already read into memory), per
// LoadFile's contract. source is used only for error messages.
func Parse(data []byte, source string) (*ContainerInfo, error) {
	var doc descriptorFile
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, wrapDescriptorErr("%s: parse: %v", source, err)
	}
	if doc.Info.TypeName == "" {
		return nil, wrapDescriptorErr("%s: missing info.type_name", source)
	}
	if doc.Info.CType == "" {
		return nil, wrapDescriptorErr("%s: missing info.ctype", source)
	}
	if doc.Info.Header == "" {
		return nil, wrapDescriptorErr("%s: missing info.header", source)
	}
	if doc.Codegen.Func == "" {
		return nil, wrapDescriptorErr("%s: missing codegen.func", source)
	}
	if doc.Codegen.Decl == "" {
		return nil, wrapDescriptorErr("%s: missing codegen.decl", source)
	}
	ctype, err := ParseContainerType(doc.Info.CType)
	if err != nil {
		return nil, wrapDescriptorErr("%s: %v", source, err)
	}

	var matcher *regexp.Regexp
	if doc.Info.Matcher != "" {
		matcher, err = regexp.Compile(doc.Info.Matcher)
		if err != nil {
			return nil, wrapDescriptorErr("%s: bad matcher regex: %v", source, err)
		}
	} else {
		matcher, err = defaultMatcher(doc.Info.TypeName)
		if err != nil {
			return nil, wrapDescriptorErr("%s: bad derived matcher: %v", source, err)
		}
	}

	info := &ContainerInfo{
		TypeName:           doc.Info.TypeName,
		Matcher:            matcher,
		CType:              ctype,
		Header:             doc.Info.Header,
		StubTemplateParams: doc.Info.StubTemplateParams,
		Codegen: Codegen{
			Decl:    doc.Codegen.Decl,
			Func:    doc.Codegen.Func,
			Handler: doc.Codegen.Handler,
		},
	}
	if doc.Info.UnderlyingContainerIndex != nil {
		info.HasUnderlyingContainer = true
		info.UnderlyingContainerIndex = *doc.Info.UnderlyingContainerIndex
	}
	return info, nil
}

// LoadLegacy accepts the alternate legacy shape mentions: a bare
// typeName plus a user-supplied matcher regex, with ctype/header/codegen
// filled in by the caller (legacy catalogs predate the descriptor-file
// format and were constructed programmatically).
func LoadLegacy(typeName, matcherPattern string, ctype ContainerType, header string, codegen Codegen) (*ContainerInfo, error) {
	if typeName == "" {
		return nil, wrapDescriptorErr("legacy entry missing typeName")
	}
	var matcher *regexp.Regexp
	var err error
	if matcherPattern != "" {
		matcher, err = regexp.Compile(matcherPattern)
	} else {
		matcher, err = defaultMatcher(typeName)
	}
	if err != nil {
		return nil, wrapDescriptorErr("legacy entry %s: bad matcher: %v", typeName, err)
	}
	return &ContainerInfo{
		TypeName: typeName,
		Matcher:  matcher,
		CType:    ctype,
		Header:   header,
		Codegen:  codegen,
	}, nil
}

// LoadDir loads every *.toml file in dir into a new Catalog, in
// directory-listing order (which os.ReadDir already returns sorted by name —
// callers that need a specific priority order should use Parse/Catalog.Add
// directly instead).
func LoadDir(dir string) (*Catalog, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, wrapDescriptorErr("read dir %s: %v", dir, err)
	}
	cat := NewCatalog()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if len(name) < 6 || name[len(name)-5:] != ".toml" {
			continue
		}
		info, err := LoadFile(dir + "/" + name)
		if err != nil {
			return nil, err
		}
		cat.Add(info)
	}
	return cat, nil
}
