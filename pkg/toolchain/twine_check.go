package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TwineCheck validates that the given distributions would render on the
// package index.
func (t *realToolchain) TwineCheck(paths []string) error {
	args := append([]string{"-m", "twine", "check"}, paths...)
	cmd := exec.Command(t.python, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("twine check failed: %w (command: %s -m twine check %s)",
			err, t.python, strings.Join(paths, " "))
	}
	return nil
}
