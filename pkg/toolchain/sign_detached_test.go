//go:build integration

package toolchain

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSignDetached(t *testing.T) {
	stubDir := t.TempDir()
	gpg := writeStub(t, stubDir, "gpg", `touch "$3.asc"`)

	distDir := t.TempDir()
	artifact := filepath.Join(distDir, "pkg-1.0.0.tar.gz")
	if err := os.WriteFile(artifact, []byte("tarball"), 0o644); err != nil {
		t.Fatalf("Failed to write artifact: %v", err)
	}

	toolchain := NewToolchain(NewToolchainParams{GPG: gpg})
	signature, err := toolchain.SignDetached(artifact)
	if err != nil {
		t.Fatalf("SignDetached failed: %v", err)
	}

	if signature != artifact+".asc" {
		t.Errorf("Expected signature path %s, got %s", artifact+".asc", signature)
	}
	if _, err := os.Stat(signature); err != nil {
		t.Errorf("Expected signature file to exist: %v", err)
	}
}

func TestSignDetached_Failure(t *testing.T) {
	stubDir := t.TempDir()
	gpg := writeStub(t, stubDir, "gpg", "exit 2")

	toolchain := NewToolchain(NewToolchainParams{GPG: gpg})
	_, err := toolchain.SignDetached("/nonexistent/pkg.tar.gz")
	if err == nil {
		t.Fatal("Expected SignDetached to fail")
	}
	if !strings.Contains(err.Error(), "signing failed") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSetupGPGTTY_KeepsExistingValue(t *testing.T) {
	t.Setenv("GPG_TTY", "/dev/pts/9")

	toolchain := NewToolchain(NewToolchainParams{})
	toolchain.SetupGPGTTY()

	if got := os.Getenv("GPG_TTY"); got != "/dev/pts/9" {
		t.Errorf("Expected GPG_TTY to stay /dev/pts/9, got %s", got)
	}
}
