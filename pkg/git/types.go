package git

// CreateSignedTagParams contains parameters for CreateSignedTag.
type CreateSignedTagParams struct {
	RepoPath   string
	Tag        string
	Message    string
	GPGProgram string
}
