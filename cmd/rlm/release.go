package main

import (
	"fmt"
	"os"

	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/dependencies"
	"github.com/lerenn/release-manager/pkg/forge"
	"github.com/lerenn/release-manager/pkg/project"
	"github.com/lerenn/release-manager/pkg/release"
	"github.com/lerenn/release-manager/pkg/storage"
	"github.com/lerenn/release-manager/pkg/toolchain"
	"github.com/spf13/cobra"
)

func createReleaseCmd() *cobra.Command {
	var tox, noTox bool
	var signAssets, noSignAssets bool

	releaseCmd := &cobra.Command{
		Use:   "release",
		Short: "Make a new release of the project in the current directory",
		Long: `Make a new release of the project in the current directory.

Finalizes the version and changelog, builds and optionally signs the
distributions, commits and tags, creates the GitHub release, uploads the
artifacts to PyPI, artifact storage and the release, then reopens
development on the next version.

Examples:
  rlm release
  rlm release --tox
  rlm release --no-sign-assets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := release.RunOptions{
				Tox:        cfg.Release.Tox,
				SignAssets: cfg.Release.SignAssets,
			}
			// Explicit flags override the config defaults, the negative
			// flag winning when both are given.
			if cmd.Flags().Changed("tox") {
				opts.Tox = tox
			}
			if cmd.Flags().Changed("no-tox") {
				opts.Tox = !noTox
			}
			if cmd.Flags().Changed("sign-assets") {
				opts.SignAssets = signAssets
			}
			if cmd.Flags().Changed("no-sign-assets") {
				opts.SignAssets = !noSignAssets
			}

			deps := dependencies.New().
				WithConfig(config.NewManager()).
				WithLogger(newLogger()).
				WithToolchain(toolchain.NewToolchain(toolchain.NewToolchainParams{
					Python: cfg.Python,
					GPG:    cfg.GPG.Program,
				}))

			if cfg.Storage.Bucket != "" {
				uploader, err := storage.NewS3Uploader(storage.NewS3UploaderParams{
					Bucket:    cfg.Storage.Bucket,
					Region:    cfg.Storage.Region,
					Prefix:    cfg.Storage.Prefix,
					AccessKey: cfg.Storage.AccessKey,
					SecretKey: cfg.Storage.SecretKey,
					Endpoint:  cfg.Storage.Endpoint,
				})
				if err != nil {
					return err
				}
				deps.WithStorage(uploader)
			}

			if err := deps.Validate(); err != nil {
				return err
			}

			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			info, err := project.NewInspector(deps.FS).Inspect(dir)
			if err != nil {
				return err
			}

			client, err := forge.NewClient(forge.NewClientParams{
				BaseURL: cfg.GitHub.APIURL,
				Tokens:  forge.NewEnvTokenProvider(cfg.GitHub.Token),
			})
			if err != nil {
				return err
			}

			// Signing prompts must reach the terminal when GPG runs under git.
			deps.Toolchain.SetupGPGTTY()

			proj, err := release.NewProject(release.NewProjectParams{
				Dependencies: deps,
				Info:         info,
				Repo:         client.Repo(info.GitHubOwner, info.GitHubRepo),
				GPGProgram:   cfg.GPG.Program,
			})
			if err != nil {
				return err
			}

			return proj.Run(opts)
		},
	}

	// Add flags
	releaseCmd.Flags().BoolVar(&tox, "tox", false, "Run tox before building")
	releaseCmd.Flags().BoolVar(&noTox, "no-tox", false, "Do not run tox before building")
	releaseCmd.Flags().BoolVar(&signAssets, "sign-assets", false, "Sign the built artifacts with GPG")
	releaseCmd.Flags().BoolVar(&noSignAssets, "no-sign-assets", false, "Do not sign the built artifacts")

	return releaseCmd
}
