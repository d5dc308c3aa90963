// Package bootstrap creates the GitHub repository for a local project and
// uploads the existing history to it.
package bootstrap

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/lerenn/release-manager/pkg/dependencies"
	"github.com/lerenn/release-manager/pkg/forge"
	"github.com/lerenn/release-manager/pkg/project"
)

// dependabotLabels are ensured on repositories carrying a Dependabot config
// so its pull requests arrive pre-labeled.
var dependabotLabels = []forge.EnsureLabelParams{
	{
		Name:        "dependencies",
		Color:       "8732bc",
		Description: "Update one or more dependencies' versions",
	},
	{
		Name:        "d:github-actions",
		Color:       "74fa75",
		Description: "Update a GitHub Actions action dependency",
	},
}

var topicSeparatorRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// Flow runs the repository bootstrap sequence for one local project.
type Flow struct {
	deps   *dependencies.Dependencies
	client *forge.Client
	info   *project.Info
}

// NewFlowParams contains parameters for NewFlow.
type NewFlowParams struct {
	Dependencies *dependencies.Dependencies
	Client       *forge.Client
	Info         *project.Info
}

// NewFlow creates a new Flow instance.
func NewFlow(params NewFlowParams) (*Flow, error) {
	if params.Info == nil {
		return nil, ErrNoProjectInfo
	}
	if params.Client == nil {
		return nil, ErrNoForgeClient
	}
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	return &Flow{deps: deps, client: params.Client, info: params.Info}, nil
}

// RunOptions control repository creation.
type RunOptions struct {
	// RepoName overrides the repository name, which defaults to the name
	// from the project's GitHub URL.
	RepoName string
	// Private creates the repository as private.
	Private bool
}

// Run creates the repository, sets its topics and labels, points the local
// origin remote at it and pushes all branches and tags. Nothing is cleaned
// up on failure; a partially bootstrapped repository is left for inspection.
func (f *Flow) Run(opts RunOptions) error {
	name := opts.RepoName
	if name == "" {
		name = f.info.GitHubRepo
	}

	f.deps.Logger.Boldf("Creating GitHub repository %s ...", name)
	created, err := f.client.CreateRepository(forge.CreateRepositoryParams{
		Name:                name,
		Description:         f.info.Description,
		Private:             opts.Private,
		DeleteBranchOnMerge: true,
	})
	if err != nil {
		return err
	}

	f.deps.Logger.Boldf("Setting repository topics ...")
	repo := f.client.Repo(created.GetOwner().GetLogin(), created.GetName())
	if err := repo.ReplaceTopics(SanitizeTopics(f.info.Keywords)); err != nil {
		return err
	}

	dependabot := filepath.Join(f.info.Directory, ".github", "dependabot.yml")
	exists, err := f.deps.FS.Exists(dependabot)
	if err != nil {
		return err
	}
	if exists {
		f.deps.Logger.Boldf("Ensuring Dependabot labels exist ...")
		for _, label := range dependabotLabels {
			if err := repo.EnsureLabel(label); err != nil {
				return err
			}
		}
	}

	if err := f.setOriginRemote(created.GetSSHURL()); err != nil {
		return err
	}

	f.deps.Logger.Boldf("Pushing all branches and tags ...")
	return f.deps.Git.PushAll(f.info.Directory, "origin")
}

// setOriginRemote points origin at the new repository, replacing any remote
// already using the name.
func (f *Flow) setOriginRemote(sshURL string) error {
	remotes, err := f.deps.Git.GetRemotes(f.info.Directory)
	if err != nil {
		return err
	}
	for _, remote := range remotes {
		if remote != "origin" {
			continue
		}
		f.deps.Logger.Logf("Replacing existing origin remote")
		if err := f.deps.Git.RemoveRemote(f.info.Directory, "origin"); err != nil {
			return err
		}
		break
	}

	f.deps.Logger.Boldf("Pointing origin at %s ...", sshURL)
	return f.deps.Git.AddRemote(f.info.Directory, "origin", sshURL)
}

// SanitizeTopics normalizes keywords into GitHub topic names: lowercased,
// with runs of non-alphanumeric characters collapsed into single hyphens.
// A "python" topic is appended when the keywords do not already carry one.
func SanitizeTopics(keywords []string) []string {
	topics := make([]string, 0, len(keywords)+1)
	hasPython := false
	for _, keyword := range keywords {
		topic := topicSeparatorRegexp.ReplaceAllString(strings.ToLower(keyword), "-")
		topic = strings.Trim(topic, "-")
		if topic == "" {
			continue
		}
		if topic == "python" {
			hasPython = true
		}
		topics = append(topics, topic)
	}
	if !hasPython {
		topics = append(topics, "python")
	}
	return topics
}
