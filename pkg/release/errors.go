package release

import "errors"

var (
	// ErrNoProjectInfo is returned when no project inspection is provided.
	ErrNoProjectInfo = errors.New("no project info provided")
	// ErrNoForgeRepo is returned when no repository client is provided.
	ErrNoForgeRepo = errors.New("no repository client provided")
	// ErrNoAssets is returned when a phase needs built artifacts and none exist.
	ErrNoAssets = errors.New("no assets built")
	// ErrNoReleaseTarget is returned when assets are uploaded before the
	// release exists.
	ErrNoReleaseTarget = errors.New("no release to upload to")
	// ErrTagExists is returned when the release tag is already present.
	ErrTagExists = errors.New("tag already exists")
	// ErrReleaseExists is returned when the tag already has a release.
	ErrReleaseExists = errors.New("release already exists")
)
