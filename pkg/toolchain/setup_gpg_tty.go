package toolchain

import (
	"os"
	"os/exec"
	"strings"
)

// SetupGPGTTY points GPG_TTY at the controlling terminal. GPG needs the
// variable when git invokes it for tag signing. No terminal, no change.
func (t *realToolchain) SetupGPGTTY() {
	if os.Getenv("GPG_TTY") != "" {
		return
	}

	cmd := exec.Command("tty")
	cmd.Stdin = os.Stdin
	output, err := cmd.Output()
	if err != nil {
		return
	}
	if tty := strings.TrimSpace(string(output)); tty != "" {
		os.Setenv("GPG_TTY", tty)
	}
}
