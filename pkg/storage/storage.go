// Package storage uploads release artifacts to long-term file storage.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=storage.go -destination=mocks/storage.gen.go -package=mocks

// Uploader sends release artifacts to file storage.
type Uploader interface {
	// Upload stores the file under the project's storage directory and
	// returns the object key. Files the storage already has are skipped,
	// which makes retries safe.
	Upload(projectName, path, contentType string) (string, error)
}
