package main

import (
	"fmt"
	"os"

	"github.com/lerenn/release-manager/pkg/bootstrap"
	"github.com/lerenn/release-manager/pkg/config"
	"github.com/lerenn/release-manager/pkg/dependencies"
	"github.com/lerenn/release-manager/pkg/forge"
	"github.com/lerenn/release-manager/pkg/project"
	"github.com/spf13/cobra"
)

func createMkGithubCmd() *cobra.Command {
	var private bool
	var repoName string

	mkGithubCmd := &cobra.Command{
		Use:   "mkgithub",
		Short: "Create a GitHub repository for the project and push to it",
		Long: `Create a GitHub repository for the project in the current directory.

Sets the repository topics from the project keywords, ensures the Dependabot
labels when the project uses Dependabot, points the origin remote at the new
repository and pushes all branches and tags.

Examples:
  rlm mkgithub
  rlm mkgithub --private
  rlm mkgithub --repo-name my-project`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			deps := dependencies.New().
				WithConfig(config.NewManager()).
				WithLogger(newLogger())
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

			flow, err := bootstrap.NewFlow(bootstrap.NewFlowParams{
				Dependencies: deps,
				Client:       client,
				Info:         info,
			})
			if err != nil {
				return err
			}

			return flow.Run(bootstrap.RunOptions{
				RepoName: repoName,
				Private:  private,
			})
		},
	}

	// Add flags
	mkGithubCmd.Flags().BoolVarP(&private, "private", "P", false, "Make the new repository private")
	mkGithubCmd.Flags().StringVar(&repoName, "repo-name", "", "Name for the repository (defaults to the project name)")

	return mkGithubCmd
}
