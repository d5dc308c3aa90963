package changelog

import "errors"

// Changelog-specific error types.
var (
	ErrBeginsWithRule   = errors.New("changelog begins with hrule")
	ErrBadSectionHeader = errors.New("section header not in \"version (date)\" format")
	ErrMissingHeaders   = errors.New("changelog is nonempty but lacks headers")
)
