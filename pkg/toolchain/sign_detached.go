package toolchain

import (
	"fmt"
	"os"
	"os/exec"
)

// SignDetached creates an ASCII-armored detached signature for path and
// returns the signature file's path. The signing program keeps the caller's
// terminal so it can prompt for a passphrase.
func (t *realToolchain) SignDetached(path string) (string, error) {
	cmd := exec.Command(t.gpg, "--detach-sign", "-a", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("signing failed: %w (command: %s --detach-sign -a %s)",
			err, t.gpg, path)
	}
	return path + ".asc", nil
}
