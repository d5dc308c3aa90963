package bootstrap

import "errors"

var (
	// ErrNoProjectInfo is returned when no project inspection is provided.
	ErrNoProjectInfo = errors.New("no project info provided")
	// ErrNoForgeClient is returned when no forge client is provided.
	ErrNoForgeClient = errors.New("no forge client provided")
)
