package version

import "errors"

// Version-specific error types.
var (
	ErrInvalidVersion = errors.New("invalid version")
)
