package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// TagExists checks if a tag exists in the repository.
func (g *realGit) TagExists(repoPath, tag string) (bool, error) {
	cmd := exec.Command("git", "tag", "-l", tag)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return false, fmt.Errorf("git tag -l failed: %w (command: git tag -l %s, output: %s)",
			err, tag, string(output))
	}
	return strings.TrimSpace(string(output)) == tag, nil
}
