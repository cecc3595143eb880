package typedesc

import "encoding/json"

// Parse decodes one type-description JSON document (debug-info
// stand-in) into a Description ready for Build.
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, err
	}
	return &desc, nil
}

// Description is the top-level JSON document: a root type reference plus
// every named type entry reachable from it.
type Description struct {
	Root  string              `json:"root"`
	Types map[string]TypeDesc `json:"types"`
}

// TypeDesc is one named entry. Which fields apply depends on Kind.
type TypeDesc struct {
	Kind   string `json:"kind"`
	Name   string `json:"name,omitempty"`
	FQName string `json:"fqname,omitempty"`
	Size   uint64 `json:"size,omitempty"`

	// struct/class/union
	Packed         bool                 `json:"packed,omitempty"`
	Virtuality     int                  `json:"virtuality,omitempty"`
	TemplateParams []TemplateParamDesc  `json:"template_params,omitempty"`
	Parents        []ParentDesc         `json:"parents,omitempty"`
	Members        []MemberDesc         `json:"members,omitempty"`
	Functions      []FunctionDesc       `json:"functions,omitempty"`

	// enum
	EnumValues map[string]string `json:"enum_values,omitempty"`

	// array
	Element string `json:"element,omitempty"`
	Length  uint64 `json:"length,omitempty"`

	// typedef/pointer/reference
	Underlying string `json:"underlying,omitempty"`
}

// TemplateParamDesc is one template argument: either Type (a type
// reference, optionally Const-qualified) or Value (a non-type literal).
type TemplateParamDesc struct {
	Type  string `json:"type,omitempty"`
	Const bool   `json:"const,omitempty"`
	Value string `json:"value,omitempty"`
}

// ParentDesc is one base-class edge.
type ParentDesc struct {
	Type      string `json:"type"`
	BitOffset uint64 `json:"bit_offset"`
}

// MemberDesc is one Class field.
type MemberDesc struct {
	Name          string `json:"name"`
	Type          string `json:"type"`
	BitOffset     uint64 `json:"bit_offset"`
	BitSize       uint64 `json:"bit_size,omitempty"`
	ExplicitAlign uint64 `json:"explicit_align,omitempty"`
}

// FunctionDesc is one member function (only Name and Virtuality matter
// downstream: TypeIdentifier/Flatten look for an "allocate" function name
// to detect allocator-shaped types).
type FunctionDesc struct {
	Name       string `json:"name"`
	Virtuality int    `json:"virtuality,omitempty"`
}
