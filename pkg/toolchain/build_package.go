package toolchain

import (
	"fmt"
	"os"
	"os/exec"
)

// BuildPackage builds the project's distributions with the build frontend.
func (t *realToolchain) BuildPackage(projectDir string) error {
	cmd := exec.Command(t.python, "-m", "build", projectDir)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("build failed: %w (command: %s -m build %s)",
			err, t.python, projectDir)
	}
	return nil
}
