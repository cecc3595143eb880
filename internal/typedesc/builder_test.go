package typedesc

import (
	"testing"

	"github.com/facebookexperimental/object-introspection-sub001/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestParseAndBuildSimpleStruct(t *testing.T) {
	doc := []byte(`{
		"root": "Point",
		"types": {
			"Point": {
				"kind": "struct",
				"name": "Point",
				"size": 8,
				"members": [
					{"name": "x", "type": "int32", "bit_offset": 0},
					{"name": "y", "type": "int32", "bit_offset": 32}
				]
			}
		}
	}`)

	desc, err := Parse(doc)
	require.NoError(t, err)

	g, root, err := Build(desc)
	require.NoError(t, err)
	require.Equal(t, g.Roots()[0], root)

	c, ok := root.(*graph.Class)
	require.True(t, ok)
	require.Equal(t, "Point", c.Name())
	require.Len(t, c.Members, 2)
	require.Equal(t, "x", c.Members[0].Name)
}

func TestBuildSelfReferentialList(t *testing.T) {
	desc := &Description{
		Root: "Node",
		Types: map[string]TypeDesc{
			"Node": {
				Kind: "struct",
				Name: "Node",
				Size: 16,
				Members: []MemberDesc{
					{Name: "value", Type: "int32", BitOffset: 0},
					{Name: "next", Type: "NodePtr", BitOffset: 64},
				},
			},
			"NodePtr": {Kind: "pointer", Underlying: "Node"},
		},
	}

	g, root, err := Build(desc)
	require.NoError(t, err)
	c := root.(*graph.Class)
	next := c.Members[1].Type.(*graph.Pointer)
	require.Same(t, root, next.Pointee)
	require.Equal(t, 3, g.NodeCount()) // Node, NodePtr, int32 primitive
}

func TestBuildUnknownReferenceErrors(t *testing.T) {
	desc := &Description{
		Root: "Missing",
		Types: map[string]TypeDesc{},
	}
	_, _, err := Build(desc)
	require.Error(t, err)
}

func TestBuildEnumValues(t *testing.T) {
	desc := &Description{
		Root: "Color",
		Types: map[string]TypeDesc{
			"Color": {
				Kind: "enum",
				Name: "Color",
				Size: 4,
				EnumValues: map[string]string{
					"0": "Red",
					"1": "Green",
				},
			},
		},
	}
	_, root, err := Build(desc)
	require.NoError(t, err)
	e := root.(*graph.Enum)
	require.Equal(t, "Red", e.Enumerators[0])
	require.Equal(t, "Green", e.Enumerators[1])
}

func TestBuildTypedefCycleUnsupported(t *testing.T) {
	desc := &Description{
		Root: "A",
		Types: map[string]TypeDesc{
			"A": {Kind: "typedef", Name: "A", Underlying: "A"},
		},
	}
	_, _, err := Build(desc)
	require.Error(t, err)
}
