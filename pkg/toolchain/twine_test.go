//go:build integration

package toolchain

import (
	"testing"
)

func TestTwineCheck(t *testing.T) {
	stubDir := t.TempDir()
	python := writeStub(t, stubDir, "python3", `printf '%s\n' "$@" > "$RECORD"`)
	record := recordFile(t)

	toolchain := NewToolchain(NewToolchainParams{Python: python})
	if err := toolchain.TwineCheck([]string{"dist/pkg-1.0.0.tar.gz", "dist/pkg-1.0.0-py3-none-any.whl"}); err != nil {
		t.Fatalf("TwineCheck failed: %v", err)
	}

	expected := "-m\ntwine\ncheck\ndist/pkg-1.0.0.tar.gz\ndist/pkg-1.0.0-py3-none-any.whl\n"
	if got := readRecord(t, record); got != expected {
		t.Errorf("Expected args %q, got %q", expected, got)
	}
}

func TestTwineUpload(t *testing.T) {
	stubDir := t.TempDir()
	python := writeStub(t, stubDir, "python3", `printf '%s\n' "$@" > "$RECORD"`)
	record := recordFile(t)

	toolchain := NewToolchain(NewToolchainParams{Python: python})
	if err := toolchain.TwineUpload([]string{"dist/pkg-1.0.0.tar.gz", "dist/pkg-1.0.0.tar.gz.asc"}); err != nil {
		t.Fatalf("TwineUpload failed: %v", err)
	}

	expected := "-m\ntwine\nupload\n--skip-existing\ndist/pkg-1.0.0.tar.gz\ndist/pkg-1.0.0.tar.gz.asc\n"
	if got := readRecord(t, record); got != expected {
		t.Errorf("Expected args %q, got %q", expected, got)
	}
}
