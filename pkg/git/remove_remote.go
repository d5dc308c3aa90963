package git

import (
	"fmt"
	"os/exec"
)

// RemoveRemote removes a remote from the repository.
func (g *realGit) RemoveRemote(repoPath, remoteName string) error {
	cmd := exec.Command("git", "remote", "rm", remoteName)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git remote rm failed: %w (command: git remote rm %s, output: %s)",
			err, remoteName, string(output))
	}
	return nil
}
