package git

import (
	"fmt"
	"os"
	"os/exec"
)

// CommitAll commits all tracked changes interactively, prefilling the editor
// with the given message template file. The command is attached to the
// caller's terminal so the operator can edit the message.
func (g *realGit) CommitAll(repoPath, templatePath string) error {
	cmd := exec.Command("git", "commit", "-a", "-v", "--template", templatePath)
	cmd.Dir = repoPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit failed: %w (command: git commit -a -v --template %s)",
			err, templatePath)
	}
	return nil
}
