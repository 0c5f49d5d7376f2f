// Package fileid issues the public identifiers behind verification links.
// The id is the sole capability token for /verify, so it must not be
// sequential or derivable from user or file metadata.
package fileid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idLength = 12

// New returns a 12-character id drawn from crypto/rand via nanoid's
// URL-safe alphabet. Collisions at this length are negligible; the files
// table's unique index is the enforcement point and callers retry once.
func New() (string, error) {
	return gonanoid.New(idLength)
}

// VerifyURL builds the canonical verification link for an id. The base
// URL may or may not carry a trailing slash; the result is the same.
func VerifyURL(baseURL, id string) string {
	return strings.TrimRight(baseURL, "/") + "/verify/" + id
}
