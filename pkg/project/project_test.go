//go:build unit

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/release-manager/pkg/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pyprojectFixture = `[project]
name = "foobar"
description = "A test package"
keywords = ["testing", "demo"]

[project.urls]
"Bug Tracker" = "https://github.com/octocat/foobar/issues"
"Source Code" = "https://github.com/octocat/foobar"
`

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestInspect_SrcPackageLayout(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml":         pyprojectFixture,
		"src/foobar/__init__.py": "\"\"\"A test package.\"\"\"\n\n__version__ = '0.5.0'\n",
		"src/foobar/core.py":     "x = 1\n",
		".github/dependabot.yml": "version: 2\n",
	})

	info, err := NewInspector(fs.NewFS()).Inspect(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, info.Directory)
	assert.Equal(t, "foobar", info.Name)
	assert.Equal(t, "A test package", info.Description)
	assert.Equal(t, []string{"testing", "demo"}, info.Keywords)
	assert.Equal(t, "foobar", info.ImportName)
	assert.False(t, info.IsFlatModule)
	assert.True(t, info.SrcLayout)
	assert.Equal(t, "0.5.0", info.Version)
	assert.Equal(t, "octocat", info.GitHubOwner)
	assert.Equal(t, "foobar", info.GitHubRepo)
	assert.Equal(t, filepath.Join(dir, "src", "foobar", "__init__.py"), info.ModuleFile())
}

func TestInspect_FlatModuleWithoutSrc(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": pyprojectFixture,
		"foobar.py":      "__version__ = \"1.2.3\"\n",
		"setup.py":       "from setuptools import setup\nsetup()\n",
	})

	info, err := NewInspector(fs.NewFS()).Inspect(dir)
	require.NoError(t, err)

	assert.Equal(t, "foobar", info.ImportName)
	assert.True(t, info.IsFlatModule)
	assert.False(t, info.SrcLayout)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, filepath.Join(dir, "foobar.py"), info.ModuleFile())
}

func TestInspect_MissingPyproject(t *testing.T) {
	dir := t.TempDir()
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrNoPyproject)
}

func TestInspect_NoModule(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": pyprojectFixture,
		"src/.keep":      "",
	})
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrNoModule)
}

func TestInspect_MultipleModules(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml":         pyprojectFixture,
		"src/foobar/__init__.py": "__version__ = '0.1.0'\n",
		"src/quux/__init__.py":   "__version__ = '0.1.0'\n",
	})
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrMultipleModules)
}

func TestInspect_VersionNotFound(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml":         pyprojectFixture,
		"src/foobar/__init__.py": "\"\"\"No version here.\"\"\"\n",
	})
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrVersionNotFound)
}

func TestInspect_NoGitHubURL(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": `[project]
name = "foobar"

[project.urls]
Homepage = "https://example.com/foobar"
`,
		"src/foobar/__init__.py": "__version__ = '0.1.0'\n",
	})
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrNoGitHubURL)
}

func TestInspect_NoProjectName(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml":         "[project]\ndescription = \"nameless\"\n",
		"src/foobar/__init__.py": "__version__ = '0.1.0'\n",
	})
	_, err := NewInspector(fs.NewFS()).Inspect(dir)
	assert.ErrorIs(t, err, ErrNoProjectName)
}

func TestIsIdentifier(t *testing.T) {
	assert.True(t, isIdentifier("foobar"))
	assert.True(t, isIdentifier("foo_bar2"))
	assert.True(t, isIdentifier("_private"))
	assert.False(t, isIdentifier("2fast"))
	assert.False(t, isIdentifier("foo-bar"))
	assert.False(t, isIdentifier(""))
}
