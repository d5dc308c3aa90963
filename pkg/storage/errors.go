package storage

import "errors"

// ErrNoBucket is returned when no storage bucket is configured.
var ErrNoBucket = errors.New("no storage bucket configured")
