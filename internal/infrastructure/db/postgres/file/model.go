package file

import (
	"time"

	userDB "doc-vault-api/internal/infrastructure/db/postgres/user"
)

type (
	Record struct {
		ID     uint64
		FileID string
		UserID *userDB.ID

		Name       string
		URL        string
		StorageKey string
		FileType   string
		SizeBytes  int64
		SizeLabel  string

		UploadedAt time.Time
		VerifyURL  string
		QRCode     string

		Access    string
		Status    string
		Folder    string
		Tags      []string
		ExpiresAt *time.Time
		DeletedAt *time.Time
	}
	Records []*Record
)
