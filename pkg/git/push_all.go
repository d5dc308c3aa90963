package git

import (
	"fmt"
	"os/exec"
)

// PushAll pushes all branches and all tags to the given remote.
func (g *realGit) PushAll(repoPath, remote string) error {
	for _, flag := range []string{"--all", "--tags"} {
		cmd := exec.Command("git", "push", flag, remote)
		cmd.Dir = repoPath
		output, err := cmd.CombinedOutput()
		if err != nil {
			return fmt.Errorf("git push failed: %w (command: git push %s %s, output: %s)",
				err, flag, remote, string(output))
		}
	}
	return nil
}
