//go:build integration

package git

import (
	"testing"
)

func TestGit_GetCommitSubjectBody(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	// Create a commit with subject and body
	runGit(t, dir, "commit", "--allow-empty",
		"-m", "v1.0.0 - First stable release", "-m", "Body line one\nBody line two")

	subject, body, err := git.GetCommitSubjectBody(dir, "HEAD")
	if err != nil {
		t.Fatalf("Expected no error reading commit: %v", err)
	}
	if subject != "v1.0.0 - First stable release" {
		t.Errorf("Unexpected subject: %q", subject)
	}
	if body != "Body line one\nBody line two" {
		t.Errorf("Unexpected body: %q", body)
	}
}

func TestGit_GetCommitSubjectBody_NoBody(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	subject, body, err := git.GetCommitSubjectBody(dir, "HEAD")
	if err != nil {
		t.Fatalf("Expected no error reading commit: %v", err)
	}
	if subject != "Initial commit" {
		t.Errorf("Unexpected subject: %q", subject)
	}
	if body != "" {
		t.Errorf("Expected empty body, got %q", body)
	}
}

func TestGit_GetCommitSubjectBody_BadRef(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	_, _, err := git.GetCommitSubjectBody(dir, "does-not-exist")
	if err == nil {
		t.Error("Expected error for unknown ref")
	}
}
