package changelog

import (
	"fmt"
	"path/filepath"

	"github.com/lerenn/release-manager/pkg/fs"
)

// rootCandidates are tried in priority order for the root changelog.
var rootCandidates = []string{"CHANGELOG.md", "CHANGELOG.rst"}

// docsCandidates hold the documentation changelog.
var docsCandidates = []string{filepath.Join("docs", "changelog.rst")}

// Store loads and saves the changelog variants of one project directory.
type Store struct {
	fs        fs.FS
	directory string
}

// NewStore creates a new Store instance for the given project directory.
func NewStore(fsys fs.FS, directory string) *Store {
	return &Store{fs: fsys, directory: directory}
}

// Load returns the first changelog found among the candidate paths, or nil
// when none of them exists.
func (s *Store) Load(docs bool) (*Changelog, error) {
	for _, name := range s.candidates(docs) {
		path := filepath.Join(s.directory, name)
		exists, err := s.fs.Exists(path)
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		content, err := s.fs.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		chlog, err := Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return chlog, nil
	}
	return nil, nil
}

// Save writes the changelog to the first existing candidate path, creating
// the highest-priority candidate when none exists. A nil changelog deletes
// the existing file instead.
func (s *Store) Save(chlog *Changelog, docs bool) error {
	paths := s.candidates(docs)
	for _, name := range paths {
		path := filepath.Join(s.directory, name)
		exists, err := s.fs.Exists(path)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if chlog == nil {
			return s.fs.Remove(path)
		}
		return s.fs.WriteFileAtomic(path, []byte(chlog.String()), 0644)
	}
	if chlog == nil {
		return nil
	}
	path := filepath.Join(s.directory, paths[0])
	return s.fs.WriteFileAtomic(path, []byte(chlog.String()), 0644)
}

func (s *Store) candidates(docs bool) []string {
	if docs {
		return docsCandidates
	}
	return rootCandidates
}
