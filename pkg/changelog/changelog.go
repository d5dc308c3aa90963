// Package changelog parses and serializes the project changelog format:
// ordered sections introduced by a "version (date)" header line underlined
// with a dash rule, newest first, with optional free text before the first
// header.
package changelog

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lerenn/release-manager/pkg/textedit"
)

// InDevelopment is the date marker of a section that has not been released.
const InDevelopment = "in development"

var (
	hruleRegexp  = regexp.MustCompile(`^---+\s*$`)
	headerRegexp = regexp.MustCompile(`(?i)^(\S+)\s+\((\d{4}-\d\d-\d\d|in development)\)\s*$`)
)

// Section is one dated block of release notes.
type Section struct {
	Version string
	Date    string // ISO date or the in-development marker
	Content string // trailing newlines stripped
}

// Changelog is an ordered changelog document, newest section first.
type Changelog struct {
	Intro    string
	Sections []Section
}

// Parse parses a changelog document.
func Parse(content string) (*Changelog, error) {
	var (
		intro    strings.Builder
		sections []Section
		prev     string
		buffered bool
	)

	appendContent := func(s string) {
		if len(sections) > 0 {
			sections[len(sections)-1].Content += s
		} else {
			intro.WriteString(s)
		}
	}
	endSection := func() {
		if len(sections) > 0 {
			last := &sections[len(sections)-1]
			last.Content = strings.TrimRight(last.Content, "\r\n")
		}
	}

	for _, line := range textedit.SplitLines(content) {
		switch {
		case hruleRegexp.MatchString(line):
			endSection()
			if !buffered {
				return nil, ErrBeginsWithRule
			}
			m := headerRegexp.FindStringSubmatch(prev)
			if m == nil {
				return nil, fmt.Errorf("%w: %q", ErrBadSectionHeader, strings.TrimRight(prev, "\r\n"))
			}
			sections = append(sections, Section{Version: m[1], Date: m[2]})
			buffered = false
		case buffered:
			appendContent(prev)
			prev = line
		default:
			prev = line
			buffered = true
		}
	}
	if buffered {
		if len(sections) == 0 {
			return nil, ErrMissingHeaders
		}
		appendContent(prev)
	}
	endSection()

	return &Changelog{Intro: intro.String(), Sections: sections}, nil
}

// String serializes the changelog. Sections are separated by one blank line,
// or two when any section content itself contains a paragraph break.
func (c *Changelog) String() string {
	if len(c.Sections) == 0 {
		return c.Intro
	}

	sep := "\n\n"
	for _, sect := range c.Sections {
		if strings.Contains(sect.Content, "\n\n") {
			sep = "\n\n\n"
			break
		}
	}

	rendered := make([]string, len(c.Sections))
	for i, sect := range c.Sections {
		rendered[i] = sect.String()
	}
	return c.Intro + strings.Join(rendered, sep) + "\n"
}

// String renders the section header, its dash rule and the content.
func (s Section) String() string {
	header := fmt.Sprintf("%s (%s)", s.Version, s.Date)
	out := header + "\n" + strings.Repeat("-", utf8.RuneCountInString(header))
	if s.Content != "" {
		out += "\n" + s.Content
	}
	return out
}
