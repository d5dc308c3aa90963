package fs

import "os"

// RemoveAll deletes a path and everything underneath it.
func (f *realFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}
