package textedit

import "errors"

// Edit-specific error types.
var (
	ErrPatternNotFound = errors.New("expected pattern not found")
	ErrBadYearSpan     = errors.New("malformed year span")
)
