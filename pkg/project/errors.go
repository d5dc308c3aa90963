package project

import "errors"

var (
	// ErrNoPyproject is returned when the directory has no pyproject.toml.
	ErrNoPyproject = errors.New("project is missing pyproject.toml")
	// ErrNoProjectName is returned when pyproject.toml declares no name.
	ErrNoProjectName = errors.New("pyproject.toml declares no project name")
	// ErrNoModule is returned when no Python module can be found.
	ErrNoModule = errors.New("no Python module in project")
	// ErrMultipleModules is returned when more than one module is found.
	ErrMultipleModules = errors.New("multiple Python modules in project")
	// ErrVersionNotFound is returned when the module has no __version__ line.
	ErrVersionNotFound = errors.New("__version__ not found")
	// ErrNoGitHubURL is returned when no project URL points at GitHub.
	ErrNoGitHubURL = errors.New("no GitHub URL among project URLs")
)
