package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0644))
}

func TestCollectFilesWalksDirectories(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.hcl"))
	writeFile(t, filepath.Join(dir, "sub", "b.hcl"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	// --- Act ---
	files, err := CollectFiles([]string{dir}, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.hcl"), files[0])
	assert.Equal(t, filepath.Join(dir, "sub", "b.hcl"), files[1])
}

func TestCollectFilesAcceptsExplicitFiles(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	file := filepath.Join(dir, "app.hcl")
	writeFile(t, file)

	// --- Act ---
	// Naming both the directory and the file inside it must not
	// produce a duplicate.
	files, err := CollectFiles([]string{file, dir}, ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{file}, files)
}

func TestCollectFilesMissingPath(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "nope")}, ".hcl")

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")
}
