// Package textedit performs line-oriented in-place file edits.
//
// Every edit reads the whole file, transforms it line by line and writes the
// result back atomically, so a failed edit never leaves a truncated target.
package textedit

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lerenn/release-manager/pkg/fs"
)

// LineFunc transforms a single line. The line keeps its trailing newline and
// the returned string is written back verbatim.
type LineFunc func(line string) string

// Editor applies line edits to files.
type Editor struct {
	fs fs.FS
}

// NewEditor creates a new Editor instance.
func NewEditor(fsys fs.FS) *Editor {
	return &Editor{fs: fsys}
}

// MapLines applies fn to every line of the file and writes the result back
// atomically. The file is left untouched when no line changes.
func (e *Editor) MapLines(path string, fn LineFunc) error {
	_, err := e.mapLines(path, fn)
	return err
}

// UpdateLines applies fn to every line of the file and reports how many lines
// it changed. Callers that require a match treat a zero count as an error.
func (e *Editor) UpdateLines(path string, fn LineFunc) (int, error) {
	return e.mapLines(path, fn)
}

// MapParagraphs applies fn to every paragraph of the file and writes the
// result back atomically. Paragraph boundaries follow Paragraphs.
func (e *Editor) MapParagraphs(path string, fn func(paragraph string) string) error {
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	changed := false
	var b strings.Builder
	for _, para := range Paragraphs(string(content)) {
		out := fn(para)
		if out != para {
			changed = true
		}
		b.WriteString(out)
	}

	if !changed {
		return nil
	}
	if err := e.fs.WriteFileAtomic(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (e *Editor) mapLines(path string, fn LineFunc) (int, error) {
	content, err := e.fs.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	changed := 0
	var b strings.Builder
	for _, line := range SplitLines(string(content)) {
		out := fn(line)
		if out != line {
			changed++
		}
		b.WriteString(out)
	}

	if changed == 0 {
		return 0, nil
	}
	if err := e.fs.WriteFileAtomic(path, []byte(b.String()), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return changed, nil
}

// SplitLines splits s into lines, each keeping its trailing newline when it
// has one. Concatenating the result restores s exactly.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Paragraphs splits s into paragraphs. Each paragraph keeps the blank lines
// that terminate it, so concatenating the result restores s exactly.
func Paragraphs(s string) []string {
	var paras []string
	var para []string
	for _, line := range SplitLines(s) {
		if strings.TrimSpace(line) != "" && len(para) > 0 && strings.TrimSpace(para[len(para)-1]) == "" {
			paras = append(paras, strings.Join(para, ""))
			para = para[:0]
		}
		para = append(para, line)
	}
	if len(para) > 0 {
		paras = append(paras, strings.Join(para, ""))
	}
	return paras
}

// ReplaceGroup replaces the first capture group of rgx in s using replacer,
// leaving s untouched when the pattern does not match.
func ReplaceGroup(rgx *regexp.Regexp, s string, replacer func(string) string) string {
	m := rgx.FindStringSubmatchIndex(s)
	if m == nil || m[2] < 0 {
		return s
	}
	return s[:m[2]] + replacer(s[m[2]:m[3]]) + s[m[3]:]
}
