package toolchain

import (
	"fmt"
	"os"
	"os/exec"
)

// RunTox runs tox in the project directory with the caller's terminal.
func (t *realToolchain) RunTox(projectDir string) error {
	cmd := exec.Command("tox")
	cmd.Dir = projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("tox failed: %w (command: tox, dir: %s)", err, projectDir)
	}
	return nil
}
