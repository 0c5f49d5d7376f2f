package file

import (
	"time"

	"doc-vault-api/internal/domain/user"
)

type Access string

const (
	AccessPublic  Access = "public"
	AccessPrivate Access = "private"
)

// StatusVerified is the default status stamped on successful uploads.
const StatusVerified = "verified"

type (
	// Record is the metadata entry for one uploaded file. ID is the public
	// verification id: short, opaque and globally unique across accounts,
	// since /verify lookups carry no owner context.
	Record struct {
		ID      string
		OwnerID *user.ID

		Name       string
		URL        string
		StorageKey string
		FileType   string

		// SizeBytes is authoritative for ledger accounting; SizeLabel is a
		// lossy display rendering and must never be trusted for arithmetic.
		SizeBytes int64
		SizeLabel string

		UploadedAt time.Time
		VerifyURL  string
		QRCode     string

		Access    Access
		Status    string
		Folder    string
		Tags      []string
		ExpiresAt *time.Time

		DeletedAt *time.Time
	}
	Records []*Record
)
