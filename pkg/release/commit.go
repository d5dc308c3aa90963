package release

import (
	"fmt"
	"strings"

	"github.com/lerenn/release-manager/pkg/git"
)

// CommitAndTag records the release commit and creates the signed version tag,
// then pushes both. The commit message is edited interactively, prefilled
// from the changelog.
func (p *Project) CommitAndTag() error {
	p.deps.Logger.Boldf("Committing & tagging ...")

	tag := "v" + p.version.String()
	exists, err := p.deps.Git.TagExists(p.directory, tag)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrTagExists, tag)
	}

	template, err := p.commitTemplate()
	if err != nil {
		return err
	}

	// git commit's --template option cannot read from stdin, so the
	// prefilled message goes through a temporary file.
	templatePath, err := p.deps.FS.CreateTempFile("release-commit-*.txt", []byte(template))
	if err != nil {
		return fmt.Errorf("failed to create commit template file: %w", err)
	}
	defer func() { _ = p.deps.FS.Remove(templatePath) }()

	if err := p.deps.Git.CommitAll(p.directory, templatePath); err != nil {
		return err
	}

	if err := p.deps.Git.CreateSignedTag(git.CreateSignedTagParams{
		RepoPath:   p.directory,
		Tag:        tag,
		Message:    "Version " + p.version.String(),
		GPGProgram: p.gpgProgram,
	}); err != nil {
		return err
	}

	return p.deps.Git.PushFollowTags(p.directory)
}

// commitTemplate renders the commit message template. Git aborts a templated
// commit when the message is left untouched, so the first line is one the
// operator has to delete.
func (p *Project) commitTemplate() (string, error) {
	var b strings.Builder
	b.WriteString("DELETE THIS LINE\n\n")

	chlog, err := p.changelogs.Load(false)
	if err != nil {
		return "", err
	}
	if chlog != nil && len(chlog.Sections) > 0 {
		fmt.Fprintf(&b, "v%s - INSERT SHORT DESCRIPTION HERE\n\n", p.version)
		b.WriteString("INSERT LONG DESCRIPTION HERE (optional)\n\n")
		b.WriteString("CHANGELOG:\n\n")
		b.WriteString(chlog.Sections[0].Content)
		b.WriteString("\n")
	} else {
		fmt.Fprintf(&b, "v%s - Initial release\n", p.version)
	}

	b.WriteString("\n# Write in Markdown.\n")
	b.WriteString("# The first line will be used as the release name.\n")
	b.WriteString("# The rest will be used as the release body.\n")

	return b.String(), nil
}
