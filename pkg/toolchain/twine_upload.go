package toolchain

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// TwineUpload uploads the given distributions to the package index. Files
// the index already has are skipped, which makes retries safe. The command
// keeps the caller's terminal so twine can prompt for credentials.
func (t *realToolchain) TwineUpload(paths []string) error {
	args := append([]string{"-m", "twine", "upload", "--skip-existing"}, paths...)
	cmd := exec.Command(t.python, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("twine upload failed: %w (command: %s -m twine upload --skip-existing %s)",
			err, t.python, strings.Join(paths, " "))
	}
	return nil
}
