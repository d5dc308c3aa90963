// Package project inspects Python project directories: pyproject metadata,
// module layout discovery and the module's version declaration.
package project

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/lerenn/release-manager/pkg/fs"
)

//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/project.gen.go -package=mocks

var (
	githubURLRegexp   = regexp.MustCompile(`^https://github\.com/([^/]+)/([^/]+)$`)
	versionLineRegexp = regexp.MustCompile(`^\s*__version__\s*=\s*['"]([^'"]+)['"]`)
)

// Inspector reads project metadata from a directory.
type Inspector interface {
	// Inspect gathers the project's metadata, layout and current version.
	Inspect(directory string) (*Info, error)
}

type realInspector struct {
	fs fs.FS
}

// NewInspector creates a new Inspector instance.
func NewInspector(fsInstance fs.FS) Inspector {
	return &realInspector{fs: fsInstance}
}

type pyproject struct {
	Project struct {
		Name        string            `toml:"name"`
		Description string            `toml:"description"`
		Keywords    []string          `toml:"keywords"`
		URLs        map[string]string `toml:"urls"`
	} `toml:"project"`
}

// Inspect implements Inspector.
func (i *realInspector) Inspect(directory string) (*Info, error) {
	pyprojectPath := filepath.Join(directory, "pyproject.toml")
	exists, err := i.fs.Exists(pyprojectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check pyproject.toml: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoPyproject, directory)
	}

	data, err := i.fs.ReadFile(pyprojectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read pyproject.toml: %w", err)
	}
	var doc pyproject
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pyproject.toml: %w", err)
	}
	if doc.Project.Name == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoProjectName, pyprojectPath)
	}

	info := &Info{
		Directory:   directory,
		Name:        doc.Project.Name,
		Description: doc.Project.Description,
		Keywords:    doc.Project.Keywords,
	}

	owner, repo, err := githubRepository(doc.Project.URLs)
	if err != nil {
		return nil, err
	}
	info.GitHubOwner = owner
	info.GitHubRepo = repo

	if err := i.findModule(info); err != nil {
		return nil, err
	}

	version, err := i.readVersion(info)
	if err != nil {
		return nil, err
	}
	info.Version = version

	return info, nil
}

// githubRepository extracts owner and repository from the first project URL
// pointing at GitHub, scanning keys in sorted order for determinism.
func githubRepository(urls map[string]string) (string, string, error) {
	keys := make([]string, 0, len(urls))
	for key := range urls {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if match := githubURLRegexp.FindStringSubmatch(urls[key]); match != nil {
			return match[1], match[2], nil
		}
	}
	return "", "", ErrNoGitHubURL
}

// findModule locates the single Python module of the project, preferring the
// src/ directory when present. Flat modules are *.py files with identifier
// stems (setup.py excluded); packages are directories with an __init__.py.
func (i *realInspector) findModule(info *Info) error {
	searchDir := info.Directory
	srcDir := filepath.Join(info.Directory, "src")
	srcExists, err := i.fs.Exists(srcDir)
	if err != nil {
		return fmt.Errorf("failed to check src directory: %w", err)
	}
	if srcExists {
		searchDir = srcDir
		info.SrcLayout = true
	}

	entries, err := i.fs.ReadDir(searchDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", searchDir, err)
	}

	type candidate struct {
		name string
		flat bool
	}
	var found []candidate
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if !isIdentifier(name) {
				continue
			}
			initExists, err := i.fs.Exists(filepath.Join(searchDir, name, "__init__.py"))
			if err != nil {
				return fmt.Errorf("failed to check %s package: %w", name, err)
			}
			if initExists {
				found = append(found, candidate{name: name, flat: false})
			}
			continue
		}
		stem := strings.TrimSuffix(name, ".py")
		if stem == name || !isIdentifier(stem) || stem == "setup" {
			continue
		}
		found = append(found, candidate{name: stem, flat: true})
	}

	switch len(found) {
	case 0:
		return fmt.Errorf("%w: %s", ErrNoModule, info.Directory)
	case 1:
		info.ImportName = found[0].name
		info.IsFlatModule = found[0].flat
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrMultipleModules, info.Directory)
	}
}

// readVersion scans the module file for its __version__ declaration.
func (i *realInspector) readVersion(info *Info) (string, error) {
	moduleFile := info.ModuleFile()
	data, err := i.fs.ReadFile(moduleFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", moduleFile, err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if match := versionLineRegexp.FindStringSubmatch(line); match != nil {
			return match[1], nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrVersionNotFound, moduleFile)
}

// isIdentifier reports whether s is a valid Python identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
