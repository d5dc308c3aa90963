//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "CHANGELOG.md")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("v0.1.0 (in development)\n"), 0644))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v0.1.0 (in development)\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestWriteFileAtomic_OverwriteReplacesContentAndMode(t *testing.T) {
	fs := NewFS()
	path := filepath.Join(t.TempDir(), "version.py")

	require.NoError(t, fs.WriteFileAtomic(path, []byte("__version__ = '0.1.0'\n"), 0644))
	require.NoError(t, fs.WriteFileAtomic(path, []byte("__version__ = '0.2.0'\n"), 0600))

	content, err := fs.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "__version__ = '0.2.0'\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteFileAtomic_LeavesNoTempFileBehind(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()

	require.NoError(t, fs.WriteFileAtomic(filepath.Join(dir, "LICENSE"), []byte("MIT\n"), 0644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "LICENSE", entries[0].Name())
}

func TestWriteFileAtomic_FailureCreatesNothing(t *testing.T) {
	fs := NewFS()

	// A path under a device file cannot be created.
	err := fs.WriteFileAtomic("/dev/null/CHANGELOG.md", []byte("x"), 0644)
	assert.Error(t, err)

	exists, _ := fs.Exists("/dev/null/CHANGELOG.md")
	assert.False(t, exists)
}
