//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()

	homeDir, err := fs.GetHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"bare tilde", "~", homeDir},
		{"tilde with trailing slash", "~/", homeDir},
		{"config under home", "~/.config/rlm.yaml", filepath.Join(homeDir, ".config", "rlm.yaml")},
		{"absolute path unchanged", "/srv/releases", "/srv/releases"},
		{"relative path unchanged", "dist/wheel", "dist/wheel"},
		{"empty path", "", ""},
		{"later tilde not expanded", "~/src/~/other", filepath.Join(homeDir, "src", "~/other")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded, err := fs.ExpandPath(tt.path)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, expanded)
		})
	}
}
