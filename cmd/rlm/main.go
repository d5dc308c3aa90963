// Package main provides the command-line interface for the release manager.
package main

import (
	"log"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	configPath string
)

// loadConfig resolves the configuration: strict when --config was given,
// falling back to the embedded defaults when the default path has no file.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.NewManager().LoadConfig(configPath)
	}
	return config.LoadConfigWithFallback(config.DefaultConfigPath())
}

// newLogger returns the logger selected by the --quiet flag.
func newLogger() logger.Logger {
	if quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "rlm",
		Short: "Release Manager - Python project release automation",
		Long: `A CLI tool automating the release workflow of Python projects: version
finalization, changelog upkeep, artifact building and signing, and publishing
to PyPI, artifact storage and GitHub.`,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(createReleaseCmd(), createMkGithubCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
