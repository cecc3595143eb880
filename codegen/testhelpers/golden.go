// Package testhelpers provides shared test utilities for codegen packages:
// a golden-file comparison harness for the C++ text this repo emits,
// operating on opaque text artifacts rather than parsed Go source.
package testhelpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// updateEnv, when set to a non-empty value, makes AssertGolden overwrite the
// golden file with got instead of comparing against it.
const updateEnv = "OIGEN_UPDATE_GOLDEN"

// AssertGolden compares got against the contents of testdata/golden/<scenario>/<name>.
// Set OIGEN_UPDATE_GOLDEN=1 to (re)write the golden file from got.
func AssertGolden(t *testing.T, scenario, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", "golden", scenario, name)

	if os.Getenv(updateEnv) != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(got), 0o644))
		return
	}

	want, err := os.ReadFile(path)
	require.NoErrorf(t, err, "read golden file %s (set %s=1 to create it)", path, updateEnv)
	require.Equal(t, string(want), got, "golden mismatch for %s", path)
}

// AssertGoldenAbs is AssertGolden with an already-resolved absolute path,
// for callers that don't follow the scenario/name convention.
func AssertGoldenAbs(t *testing.T, goldenPath, got string) {
	t.Helper()

	if os.Getenv(updateEnv) != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(got), 0o644))
		return
	}

	want, err := os.ReadFile(goldenPath)
	require.NoErrorf(t, err, "read golden file %s (set %s=1 to create it)", goldenPath, updateEnv)
	require.Equal(t, string(want), got, "golden mismatch for %s", goldenPath)
}
