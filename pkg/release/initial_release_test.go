//go:build unit

package release

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_AdvanceStatusBadge_ReplacesBadgeParagraph(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")
	readme := `.. image:: http://www.repostatus.org/badges/latest/wip.svg
    :alt: Project Status: WIP

foobar
======
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.rst"), []byte(readme), 0644))

	p, _, _ := newTestProject(t, dir, "0.1.0", nil)
	require.NoError(t, p.advanceStatusBadge())

	expected := activeBadge + "\nfoobar\n======\n"
	assert.Equal(t, expected, readFixtureFile(t, filepath.Join(dir, "README.rst")))
}

func TestProject_AdvanceStatusBadge_SkipsMissingReadme(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")

	p, _, _ := newTestProject(t, dir, "0.1.0", nil)
	require.NoError(t, p.advanceStatusBadge())

	assert.NoFileExists(t, filepath.Join(dir, "README.rst"))
}

func TestProject_AdvanceClassifier_PyprojectToml(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")
	pyproject := `[project]
name = "foobar"
classifiers = [
    "Development Status :: 2 - Pre-Alpha",
    #"Development Status :: 5 - Production/Stable",
    "Programming Language :: Python :: 3",
]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pyproject.toml"), []byte(pyproject), 0644))

	p, _, _ := newTestProject(t, dir, "0.1.0", nil)
	require.NoError(t, p.advanceClassifier())

	content := readFixtureFile(t, filepath.Join(dir, "pyproject.toml"))
	assert.NotContains(t, content, "Pre-Alpha")
	assert.Contains(t, content, "\n    \"Development Status :: 5 - Production/Stable\",\n")
}

func TestProject_AdvanceClassifier_UncommentsOnlyFirstStable(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")
	setupCfg := `[metadata]
classifiers =
    #Development Status :: 4 - Beta
    #Development Status :: 5 - Production/Stable
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "setup.cfg"), []byte(setupCfg), 0644))

	p, _, _ := newTestProject(t, dir, "0.1.0", nil)
	require.NoError(t, p.advanceClassifier())

	content := readFixtureFile(t, filepath.Join(dir, "setup.cfg"))
	assert.Contains(t, content, "\n    Development Status :: 4 - Beta\n")
	assert.Contains(t, content, "\n    #Development Status :: 5 - Production/Stable\n")
}

func TestProject_AdvanceClassifier_SkipsWithoutConfigFile(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")

	p, _, _ := newTestProject(t, dir, "0.1.0", nil)
	require.NoError(t, p.advanceClassifier())
}

func TestProject_UpdateTopics_SkipsPutWhenUnchanged(t *testing.T) {
	dir := writeProjectFixture(t, "0.1.0")
	p, mux, _ := newTestProject(t, dir, "0.1.0", nil)

	puts := 0
	mux.HandleFunc("/repos/octocat/foobar/topics", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			puts++
		}
		fmt.Fprint(w, `{"names":["available-on-pypi","python"]}`)
	})

	require.NoError(t, p.updateTopics([]string{"available-on-pypi"}, []string{"work-in-progress"}))
	assert.Zero(t, puts)
}
