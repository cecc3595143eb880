package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const vectorDescriptor = `
[info]
type_name = "std::vector"
ctype = "VECTOR"
header = "vector"
stub_template_params = [1]

[codegen]
func = "getSizeType(%1%, t, out);"
decl = "%1%"
handler = "TypeHandler<DB, %1%>"
`

func TestParseRequiresInfoAndCodegenFields(t *testing.T) {
	info, err := Parse([]byte(vectorDescriptor), "vector.toml")
	require.NoError(t, err)
	require.Equal(t, "std::vector", info.TypeName)
	require.Equal(t, Vector, info.CType)
	require.Equal(t, "vector", info.Header)
	require.True(t, info.StubsParam(1))
	require.False(t, info.StubsParam(0))
	require.True(t, info.Matcher.MatchString("std::vector"))
	require.True(t, info.Matcher.MatchString("std::vector<int, Alloc>"))
	require.False(t, info.Matcher.MatchString("std::vectorx"))
}

func TestParseMissingRequiredFieldFails(t *testing.T) {
	missingHeader := `
[info]
type_name = "std::vector"
ctype = "VECTOR"
[codegen]
func = "f"
decl = "d"
`
	_, err := Parse([]byte(missingHeader), "bad.toml")
	require.ErrorIs(t, err, ErrBadDescriptor)
}

func TestParseUnknownCTypeFails(t *testing.T) {
	bad := `
[info]
type_name = "std::frobnicator"
ctype = "FROBNICATOR"
header = "frob"
[codegen]
func = "f"
decl = "d"
`
	_, err := Parse([]byte(bad), "bad.toml")
	require.Error(t, err)
}

func TestParseCustomMatcherOverridesDefault(t *testing.T) {
	doc := `
[info]
type_name = "std::deque"
ctype = "LIST"
header = "deque"
matcher = "^std::deque<.*>$"
[codegen]
func = "f"
decl = "d"
`
	info, err := Parse([]byte(doc), "deque.toml")
	require.NoError(t, err)
	require.False(t, info.Matcher.MatchString("std::deque"))
	require.True(t, info.Matcher.MatchString("std::deque<int>"))
}

func TestCatalogMatchIsOrderPreserving(t *testing.T) {
	cat := NewCatalog()
	vec, err := Parse([]byte(vectorDescriptor), "vector.toml")
	require.NoError(t, err)
	cat.Add(vec)

	broad, err := LoadLegacy("std::.*", "^std::.*$", Unknown, "any", Codegen{})
	require.NoError(t, err)
	cat.Add(broad)

	match, ok := cat.Match("std::vector<int>")
	require.True(t, ok)
	require.Same(t, vec, match)

	match, ok = cat.Match("std::deque<int>")
	require.True(t, ok)
	require.Same(t, broad, match)
}

func TestCatalogRegisterCloneDoesNotMutateOriginal(t *testing.T) {
	cat := NewCatalog()
	vec, err := Parse([]byte(vectorDescriptor), "vector.toml")
	require.NoError(t, err)
	cat.Add(vec)

	clone := cat.RegisterClone(vec)
	clone.CaptureKeys = true

	require.False(t, vec.CaptureKeys)
	require.True(t, clone.CaptureKeys)
	require.Len(t, cat.Entries(), 2)
}
