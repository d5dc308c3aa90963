package release

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/release-manager/pkg/changelog"
	"github.com/lerenn/release-manager/pkg/version"
)

// BeginDevelopment moves the project onto the next development cycle: bumps
// __version__ to the next version's first dev release and opens a fresh
// changelog section in both changelog variants.
func (p *Project) BeginDevelopment() error {
	p.deps.Logger.Boldf("Preparing for work on next version ...")

	released := p.version.String()
	next, err := version.Next(released)
	if err != nil {
		return fmt.Errorf("failed to compute next version: %w", err)
	}
	if err := p.setVersion(next + ".dev1"); err != nil {
		return err
	}

	newSection := changelog.Section{
		Version: "v" + next,
		Date:    changelog.InDevelopment,
		Content: "",
	}

	for _, docs := range []bool{false, true} {
		if docs {
			exists, err := p.deps.FS.Exists(filepath.Join(p.directory, "docs"))
			if err != nil {
				return err
			}
			if !exists {
				continue
			}
			p.deps.Logger.Boldf("Adding new section to docs/changelog.rst ...")
		} else {
			p.deps.Logger.Boldf("Adding new section to CHANGELOG ...")
		}

		chlog, err := p.changelogs.Load(docs)
		if err != nil {
			return err
		}
		if chlog != nil && len(chlog.Sections) > 0 {
			chlog.Sections = append([]changelog.Section{newSection}, chlog.Sections...)
		} else {
			intro := ""
			if docs {
				intro = "Changelog\n=========\n\n"
			}
			chlog = &changelog.Changelog{
				Intro: intro,
				Sections: []changelog.Section{
					newSection,
					{
						Version: "v" + released,
						Date:    today(),
						Content: "Initial release",
					},
				},
			}
		}
		if err := p.changelogs.Save(chlog, docs); err != nil {
			return err
		}
	}

	return nil
}
