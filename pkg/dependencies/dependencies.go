// Package dependencies provides a centralized dependency container for the
// application. This package follows Go idioms for dependency injection by
// grouping related dependencies together and providing a fluent API for
// configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/fs"
	"github.com/lerenn/release-manager/pkg/git"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/lerenn/release-manager/pkg/storage"
	"github.com/lerenn/release-manager/pkg/toolchain"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrGitMissing       = errors.New("git dependency is required but not set")
	ErrToolchainMissing = errors.New("toolchain dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
// This follows the Go idiom of grouping related data together.
type Dependencies struct {
	FS        fs.FS
	Git       git.Git
	Toolchain toolchain.Toolchain
	Config    config.Manager
	Logger    logger.Logger
	// Storage stays nil when no artifact storage is configured; the
	// storage upload step is skipped in that case.
	Storage storage.Uploader
}

// New creates a new Dependencies instance with sensible defaults.
// This follows Go's convention of New* functions for constructors.
func New() *Dependencies {
	return &Dependencies{
		FS:        fs.NewFS(),
		Git:       git.NewGit(),
		Toolchain: toolchain.NewToolchain(toolchain.NewToolchainParams{}),
		Logger:    logger.NewNoopLogger(),
		// Note: Config and Storage are intentionally left nil as they
		// require specific configuration and are set via With* methods.
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithToolchain sets the toolchain and returns the instance for chaining.
func (d *Dependencies) WithToolchain(tc toolchain.Toolchain) *Dependencies {
	d.Toolchain = tc
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithStorage sets the artifact storage and returns the instance for chaining.
func (d *Dependencies) WithStorage(uploader storage.Uploader) *Dependencies {
	d.Storage = uploader
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an
// error if any are missing. Storage is optional.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Toolchain, ErrToolchainMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
