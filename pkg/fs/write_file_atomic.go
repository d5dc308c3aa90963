package fs

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a file atomically: the content goes to a
// temporary file in the target's directory which is then renamed over the
// target, so a failed write never leaves the target truncated.
func (f *realFS) WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	cleanup := func(err error) error {
		tmpFile.Close()
		os.Remove(tmpPath)
		return err
	}

	if _, err := tmpFile.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmpFile.Close(); err != nil {
		return cleanup(err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return cleanup(err)
	}
	return os.Rename(tmpPath, filename)
}
