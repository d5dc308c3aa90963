//go:build integration

package git

import (
	"testing"
)

func TestGit_AddRemote(t *testing.T) {
	git := NewGit()
	dir := setupTestRepo(t)

	// Test adding a new remote
	remoteName := "test-remote"
	remoteURL := "https://github.com/octocat/Hello-World.git"

	err := git.AddRemote(dir, remoteName, remoteURL)
	if err != nil {
		t.Fatalf("Expected no error adding remote: %v", err)
	}

	// Verify the remote was added
	remotes, err := git.GetRemotes(dir)
	if err != nil {
		t.Fatalf("Expected no error listing remotes: %v", err)
	}
	found := false
	for _, remote := range remotes {
		if remote == remoteName {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected remote %s in %v", remoteName, remotes)
	}

	// Test adding duplicate remote (should fail)
	err = git.AddRemote(dir, remoteName, "https://github.com/otheruser/otherrepo.git")
	if err == nil {
		t.Error("Expected error when adding duplicate remote")
	}

	// Test in non-existent directory
	err = git.AddRemote("/non/existent/directory", remoteName, remoteURL)
	if err == nil {
		t.Error("Expected error for non-existent directory")
	}
}
