//go:build integration

package toolchain

import (
	"os"
	"path/filepath"
	"testing"
)

// writeStub creates an executable shell script standing in for an external
// tool. Scripts can record their arguments through the RECORD env variable.
func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755); err != nil {
		t.Fatalf("Failed to write stub %s: %v", name, err)
	}
	return path
}

// recordFile points RECORD at a fresh file and returns its path.
func recordFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record")
	t.Setenv("RECORD", path)
	return path
}

func readRecord(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read record: %v", err)
	}
	return string(data)
}
