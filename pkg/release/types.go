package release

// Assets are the distributions built for one release.
type Assets struct {
	// Files are the dist/ artifacts in lexical order.
	Files []string
	// Signatures are the detached signature files, parallel to Files when
	// signing is enabled and empty otherwise.
	Signatures []string
}

// All returns the artifacts followed by their signatures.
func (a *Assets) All() []string {
	all := make([]string, 0, len(a.Files)+len(a.Signatures))
	all = append(all, a.Files...)
	all = append(all, a.Signatures...)
	return all
}

// RunOptions control the optional steps of a release run.
type RunOptions struct {
	// Tox runs the test suite before building when tox.ini exists.
	Tox bool
	// SignAssets creates detached signatures for the built artifacts.
	SignAssets bool
}
