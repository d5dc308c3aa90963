//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ReadDir(t *testing.T) {
	fs := NewFS()
	dir := t.TempDir()

	// A dist directory after a build.
	for _, name := range []string{"demo-1.2.0.tar.gz", "demo-1.2.0-py3-none-any.whl"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("artifact"), 0644))
	}

	entries, err := fs.ReadDir(dir)
	assert.NoError(t, err)
	require.Len(t, entries, 2)

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	assert.Contains(t, names, "demo-1.2.0.tar.gz")
	assert.Contains(t, names, "demo-1.2.0-py3-none-any.whl")
}

func TestFS_ReadDir_Missing(t *testing.T) {
	fs := NewFS()

	_, err := fs.ReadDir(filepath.Join(t.TempDir(), "dist"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
