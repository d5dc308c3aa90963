package release

import (
	"mime"
	"path/filepath"
	"strings"
)

// compressionTypes maps compression suffixes to the MIME type of the
// compression itself, which is what matters for a downloaded artifact.
// application/gzip is defined by RFC 6713; the rest use the x- convention.
var compressionTypes = map[string]string{
	".gz":   "application/gzip",
	".tgz":  "application/gzip",
	".taz":  "application/gzip",
	".bz2":  "application/x-bzip2",
	".tbz2": "application/x-bzip2",
	".xz":   "application/x-xz",
	".txz":  "application/x-xz",
	".z":    "application/x-compress",
	".br":   "application/x-brotli",
}

// mimeType resolves the Content-Type to upload a release artifact with.
func mimeType(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if mtype, ok := compressionTypes[ext]; ok {
		return mtype
	}

	switch ext {
	case ".whl":
		// Wheels are zip archives without a registered MIME type.
		return "application/zip"
	case ".asc":
		return "application/pgp-signature"
	}

	if mtype := mime.TypeByExtension(ext); mtype != "" {
		return mtype
	}
	return "application/octet-stream"
}
