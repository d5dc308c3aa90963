package release

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"

	"github.com/lerenn/release-manager/pkg/textedit"
	"github.com/lerenn/release-manager/pkg/version"
)

var (
	licenseCopyrightRegexp = regexp.MustCompile(`^Copyright \(c\) (\d[-,\d\s]+\d) \w+`)
	confCopyrightRegexp    = regexp.MustCompile(`^copyright\s*=\s*['"](\d[-,\d\s]+\d) \w+`)
)

// Finalize turns the in-development version into the release version: it
// strips the prerelease and dev segments from __version__, stamps today's
// date on the changelogs and brings the copyright years up to date. On the
// very first release it also advances the project's status markers.
func (p *Project) Finalize() error {
	p.deps.Logger.Boldf("Finalizing version ...")

	final, err := version.Finalize(p.version.String())
	if err != nil {
		return err
	}
	if err := p.setVersion(final); err != nil {
		return err
	}

	for _, docs := range []bool{false, true} {
		chlog, err := p.changelogs.Load(docs)
		if err != nil {
			return err
		}
		if chlog == nil || len(chlog.Sections) == 0 {
			continue
		}
		if docs {
			p.deps.Logger.Boldf("Updating docs/changelog.rst ...")
		} else {
			p.deps.Logger.Boldf("Updating CHANGELOG ...")
		}
		chlog.Sections[0].Date = today()
		if err := p.changelogs.Save(chlog, docs); err != nil {
			return err
		}
	}

	years, err := p.deps.Git.GetCommitYears(p.directory)
	if err != nil {
		return err
	}
	years = append(years, time.Now().Year())

	p.deps.Logger.Boldf("Ensuring LICENSE copyright line is up to date ...")
	if err := p.updateLicenseYears(years); err != nil {
		return err
	}

	confPath := filepath.Join(p.directory, "docs", "conf.py")
	confExists, err := p.deps.FS.Exists(confPath)
	if err != nil {
		return fmt.Errorf("failed to check docs/conf.py: %w", err)
	}
	if confExists {
		p.deps.Logger.Boldf("Ensuring docs/conf.py copyright is up to date ...")
		if err := p.updateCopyrightLine(confPath, confCopyrightRegexp, years, false); err != nil {
			return err
		}
	}

	rootChangelog, err := p.changelogs.Load(false)
	if err != nil {
		return err
	}
	if rootChangelog == nil {
		// No changelog yet means this is the initial release.
		return p.advanceProjectStatus()
	}
	return nil
}

func (p *Project) updateLicenseYears(years []int) error {
	licensePath := filepath.Join(p.directory, "LICENSE")
	return p.updateCopyrightLine(licensePath, licenseCopyrightRegexp, years, true)
}

// updateCopyrightLine merges years into the copyright year span of the first
// matching line. When required is set, a file without a matching line is an
// error.
func (p *Project) updateCopyrightLine(path string, rgx *regexp.Regexp, years []int, required bool) error {
	matched := false
	var spanErr error
	err := p.editor.MapLines(path, func(line string) string {
		if !rgx.MatchString(line) {
			return line
		}
		matched = true
		return textedit.ReplaceGroup(rgx, line, func(span string) string {
			updated, err := textedit.UpdateYearSpan(span, years)
			if err != nil {
				spanErr = err
				return span
			}
			return updated
		})
	})
	if err != nil {
		return err
	}
	if spanErr != nil {
		return fmt.Errorf("failed to update copyright years in %s: %w", path, spanErr)
	}
	if required && !matched {
		return fmt.Errorf("%w: copyright line in %s", textedit.ErrPatternNotFound, path)
	}
	return nil
}
