package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetRemotes lists the configured remote names.
func (g *realGit) GetRemotes(repoPath string) ([]string, error) {
	cmd := exec.Command("git", "remote")
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git remote failed: %w (command: git remote, output: %s)",
			err, string(output))
	}

	var remotes []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			remotes = append(remotes, line)
		}
	}
	return remotes, nil
}
