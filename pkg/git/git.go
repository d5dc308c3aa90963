// Package git shells out to the git binary for the repository operations
// used by the release and bootstrap flows.
package git

//go:generate mockgen -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// CommitAll commits all tracked changes interactively, prefilling the
	// editor with the given message template file.
	CommitAll(repoPath, templatePath string) error

	// CreateSignedTag creates a GPG-signed annotated tag.
	CreateSignedTag(params CreateSignedTagParams) error

	// TagExists checks if a tag exists in the repository.
	TagExists(repoPath, tag string) (bool, error)

	// PushFollowTags pushes commits together with their annotated tags.
	PushFollowTags(repoPath string) error

	// PushAll pushes all branches and all tags to the given remote.
	PushAll(repoPath, remote string) error

	// GetRemotes lists the configured remote names.
	GetRemotes(repoPath string) ([]string, error)

	// AddRemote adds a new remote to the repository.
	AddRemote(repoPath, remoteName, remoteURL string) error

	// RemoveRemote removes a remote from the repository.
	RemoveRemote(repoPath, remoteName string) error

	// GetCommitYears returns the sorted set of years with at least one commit.
	GetCommitYears(repoPath string) ([]int, error)

	// GetCommitSubjectBody returns the subject and body of a commit.
	GetCommitSubjectBody(repoPath, ref string) (subject, body string, err error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
