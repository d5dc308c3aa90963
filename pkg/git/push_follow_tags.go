package git

import (
	"fmt"
	"os/exec"
)

// PushFollowTags pushes commits together with their annotated tags.
func (g *realGit) PushFollowTags(repoPath string) error {
	cmd := exec.Command("git", "push", "--follow-tags")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git push failed: %w (command: git push --follow-tags, output: %s)",
			err, string(output))
	}
	return nil
}
