// Package toolchain runs the Python packaging tools a release depends on:
// tox, build, twine and GPG. Commands stay attached to the caller's terminal
// so credential and passphrase prompts reach the operator.
package toolchain

//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/toolchain.gen.go -package=mocks

// Toolchain provides the packaging tool operations.
type Toolchain interface {
	// RunTox runs the project's tox test suite.
	RunTox(projectDir string) error
	// BuildPackage builds the project's sdist and wheel into dist/.
	BuildPackage(projectDir string) error
	// TwineCheck validates the built distributions.
	TwineCheck(paths []string) error
	// TwineUpload uploads distributions to the package index, skipping
	// files the index already has.
	TwineUpload(paths []string) error
	// SignDetached creates an ASCII-armored detached signature next to
	// path and returns the signature path.
	SignDetached(path string) (string, error)
	// SetupGPGTTY points GPG_TTY at the controlling terminal so GPG can
	// prompt when invoked through git. Best effort: already-set values
	// and missing terminals are left alone.
	SetupGPGTTY()
}

type realToolchain struct {
	python string
	gpg    string
}

// NewToolchainParams contains parameters for NewToolchain.
type NewToolchainParams struct {
	Python string // defaults to python3
	GPG    string // defaults to gpg
}

// NewToolchain creates a new Toolchain instance.
func NewToolchain(params NewToolchainParams) Toolchain {
	python := params.Python
	if python == "" {
		python = "python3"
	}
	gpg := params.GPG
	if gpg == "" {
		gpg = "gpg"
	}
	return &realToolchain{python: python, gpg: gpg}
}
