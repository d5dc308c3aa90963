package release

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/lerenn/release-manager/pkg/textedit"
)

const (
	wipBadgeURL = ".. image:: http://www.repostatus.org/badges/latest/wip.svg"

	activeBadge = `.. image:: http://www.repostatus.org/badges/latest/active.svg
    :target: http://www.repostatus.org/#active
    :alt: Project Status: Active — The project has reached a stable, usable
          state and is being actively developed.
`
)

var (
	earlyStatusRegexp  = regexp.MustCompile(`^\s*#?\s*["']?Development Status :: [123] `)
	stableStatusRegexp = regexp.MustCompile(`^\s*#?\s*["']?Development Status :: [4567] `)
)

// advanceProjectStatus flips the project's public markers from
// work-in-progress to released: the repostatus badge, the Development Status
// classifier and the repository topics.
func (p *Project) advanceProjectStatus() error {
	p.deps.Logger.Boldf("Advancing repository status ...")
	if err := p.advanceStatusBadge(); err != nil {
		return err
	}

	p.deps.Logger.Boldf("Advancing Development Status classifier ...")
	if err := p.advanceClassifier(); err != nil {
		return err
	}

	p.deps.Logger.Boldf("Updating GitHub topics ...")
	return p.updateTopics([]string{"available-on-pypi"}, []string{"work-in-progress"})
}

// advanceStatusBadge replaces the work-in-progress repostatus badge paragraph
// in README.rst with the active one.
func (p *Project) advanceStatusBadge() error {
	readmePath := filepath.Join(p.directory, "README.rst")
	exists, err := p.deps.FS.Exists(readmePath)
	if err != nil {
		return fmt.Errorf("failed to check README.rst: %w", err)
	}
	if !exists {
		return nil
	}

	return p.editor.MapParagraphs(readmePath, func(para string) string {
		lines := textedit.SplitLines(para)
		if len(lines) > 0 && strings.TrimRight(lines[0], "\r\n") == wipBadgeURL {
			return activeBadge + "\n"
		}
		return para
	})
}

// advanceClassifier drops pre-release Development Status classifiers and
// uncomments the first released one. Works on setup.cfg and pyproject.toml
// alike since both list classifiers one per line.
func (p *Project) advanceClassifier() error {
	var path string
	for _, name := range []string{"setup.cfg", "pyproject.toml"} {
		candidate := filepath.Join(p.directory, name)
		exists, err := p.deps.FS.Exists(candidate)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", name, err)
		}
		if exists {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil
	}

	uncommented := false
	return p.editor.MapLines(path, func(line string) string {
		if earlyStatusRegexp.MatchString(line) {
			return ""
		}
		if stableStatusRegexp.MatchString(line) && !uncommented {
			uncommented = true
			return strings.Replace(line, "#", "", 1)
		}
		return line
	})
}

// updateTopics adjusts the repository topics, touching the forge only when
// the set actually changes.
func (p *Project) updateTopics(add, remove []string) error {
	topics, err := p.repo.Topics()
	if err != nil {
		return err
	}

	next := make(map[string]bool, len(topics)+len(add))
	for _, topic := range topics {
		next[topic] = true
	}
	for _, topic := range add {
		next[topic] = true
	}
	for _, topic := range remove {
		delete(next, topic)
	}

	names := make([]string, 0, len(next))
	for topic := range next {
		names = append(names, topic)
	}
	sort.Strings(names)

	current := make([]string, len(topics))
	copy(current, topics)
	sort.Strings(current)
	if len(names) == len(current) {
		same := true
		for i := range names {
			if names[i] != current[i] {
				same = false
				break
			}
		}
		if same {
			return nil
		}
	}

	return p.repo.ReplaceTopics(names)
}
