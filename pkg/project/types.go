package project

import "path/filepath"

// Info describes an inspected project.
type Info struct {
	// Directory is the project root.
	Directory string
	// Name is the distribution name from pyproject.toml.
	Name string
	// Description is the one-line project description.
	Description string
	// Keywords are the project keywords from pyproject.toml.
	Keywords []string
	// ImportName is the Python module or package name.
	ImportName string
	// IsFlatModule is true for single-file modules, false for packages.
	IsFlatModule bool
	// SrcLayout is true when the module lives under src/.
	SrcLayout bool
	// Version is the current __version__ value.
	Version string
	// GitHubOwner and GitHubRepo identify the project's GitHub repository.
	GitHubOwner string
	GitHubRepo  string
}

// ModuleFile returns the path of the file holding the __version__
// declaration: the module file itself for flat modules, the package's
// __init__.py otherwise.
func (i *Info) ModuleFile() string {
	parts := []string{i.Directory}
	if i.SrcLayout {
		parts = append(parts, "src")
	}
	if i.IsFlatModule {
		parts = append(parts, i.ImportName+".py")
	} else {
		parts = append(parts, i.ImportName, "__init__.py")
	}
	return filepath.Join(parts...)
}
