package release

import (
	"fmt"
	"strings"

	"github.com/google/go-github/v62/github"
	"github.com/lerenn/release-manager/pkg/forge"
)

// PublishRelease creates the GitHub release for the version tag, using the
// tagged commit's subject as the release name and its body as the release
// notes. The returned release is the upload target for the asset upload.
func (p *Project) PublishRelease() (*github.RepositoryRelease, error) {
	p.deps.Logger.Boldf("Creating GitHub release ...")

	tag := "v" + p.version.String()
	existing, err := p.repo.ReleaseByTag(tag)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrReleaseExists, tag)
	}

	subject, body, err := p.deps.Git.GetCommitSubjectBody(p.directory, tag+"^{commit}")
	if err != nil {
		return nil, err
	}

	return p.repo.CreateRelease(forge.CreateReleaseParams{
		TagName: tag,
		Name:    subject,
		Body:    strings.TrimSpace(body),
		Draft:   false,
	})
}
