package fs

import "os"

// MkdirAll creates a directory along with any missing parents.
func (f *realFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
