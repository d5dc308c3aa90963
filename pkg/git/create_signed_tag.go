package git

import (
	"fmt"
	"os"
	"os/exec"
)

// CreateSignedTag creates a GPG-signed annotated tag. The command is attached
// to the caller's terminal so the signing program can prompt for a passphrase.
func (g *realGit) CreateSignedTag(params CreateSignedTagParams) error {
	args := []string{}
	if params.GPGProgram != "" {
		args = append(args, "-c", "gpg.program="+params.GPGProgram)
	}
	args = append(args, "tag", "-s", "-m", params.Message, params.Tag)

	cmd := exec.Command("git", args...)
	cmd.Dir = params.RepoPath
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git tag failed: %w (command: git tag -s -m %q %s)",
			err, params.Message, params.Tag)
	}
	return nil
}
