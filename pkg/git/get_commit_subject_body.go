package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// GetCommitSubjectBody returns the subject and body of a commit. The two
// parts are separated with a NUL byte so a subject containing newlines
// cannot be confused with the body.
func (g *realGit) GetCommitSubjectBody(repoPath, ref string) (string, string, error) {
	cmd := exec.Command("git", "show", "-s", "--format=%s%x00%b", ref)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", "", fmt.Errorf("git show failed: %w (command: git show -s --format=%%s%%x00%%b %s, output: %s)",
			err, ref, string(output))
	}

	subject, body, found := strings.Cut(strings.TrimSpace(string(output)), "\x00")
	if !found {
		return "", "", fmt.Errorf("unexpected git show output for %s: missing separator", ref)
	}
	return subject, body, nil
}
