// Package release drives the release lifecycle of a Python project: version
// finalization, artifact building and signing, tagging, publishing and the
// switch back to development.
package release

import (
	"fmt"
	"regexp"
	"time"

	"github.com/lerenn/release-manager/pkg/changelog"
	"github.com/lerenn/release-manager/pkg/dependencies"
	"github.com/lerenn/release-manager/pkg/forge"
	"github.com/lerenn/release-manager/pkg/project"
	"github.com/lerenn/release-manager/pkg/textedit"
	"github.com/lerenn/release-manager/pkg/version"
)

var versionAssignRegexp = regexp.MustCompile(`^__version__\s*=`)

// Project drives one project through a release. Methods correspond to the
// phases of Run and mutate the working tree, the repository and the forge.
// Build artifacts and the created release are returned by their phases and
// threaded into the later ones, not held on the Project.
type Project struct {
	deps       *dependencies.Dependencies
	editor     *textedit.Editor
	changelogs *changelog.Store
	info       *project.Info
	repo       *forge.Repo

	directory  string
	version    version.Version
	gpgProgram string
}

// NewProjectParams contains parameters for NewProject.
type NewProjectParams struct {
	Dependencies *dependencies.Dependencies
	Info         *project.Info
	Repo         *forge.Repo
	GPGProgram   string
}

// NewProject creates a new Project instance.
func NewProject(params NewProjectParams) (*Project, error) {
	if params.Info == nil {
		return nil, ErrNoProjectInfo
	}
	if params.Repo == nil {
		return nil, ErrNoForgeRepo
	}
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	v, err := version.Parse(params.Info.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project version: %w", err)
	}

	return &Project{
		deps:       deps,
		editor:     textedit.NewEditor(deps.FS),
		changelogs: changelog.NewStore(deps.FS, params.Info.Directory),
		info:       params.Info,
		repo:       params.Repo,
		directory:  params.Info.Directory,
		version:    v,
		gpgProgram: params.GPGProgram,
	}, nil
}

// Version returns the project's current version token.
func (p *Project) Version() string {
	return p.version.String()
}

// setVersion rewrites the module's __version__ declaration and records the
// new version.
func (p *Project) setVersion(v string) error {
	p.deps.Logger.Logf("Updating __version__ string ...")

	moduleFile := p.info.ModuleFile()
	matched := false
	err := p.editor.MapLines(moduleFile, func(line string) string {
		if m := versionAssignRegexp.FindString(line); m != "" {
			matched = true
			return m + " '" + v + "'\n"
		}
		return line
	})
	if err != nil {
		return err
	}
	if !matched {
		return fmt.Errorf("%w: __version__ line in %s", textedit.ErrPatternNotFound, moduleFile)
	}

	parsed, err := version.Parse(v)
	if err != nil {
		return err
	}
	p.version = parsed
	p.info.Version = v
	return nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}
