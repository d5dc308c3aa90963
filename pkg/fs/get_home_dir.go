package fs

import "os"

// GetHomeDir returns the current user's home directory.
func (f *realFS) GetHomeDir() (string, error) {
	return os.UserHomeDir()
}
