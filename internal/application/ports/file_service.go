package ports

import (
	"context"
	"mime/multipart"
	"time"

	"doc-vault-api/internal/domain/file"
	"doc-vault-api/internal/domain/user"
)

type (
	UploadOptions struct {
		Access    file.Access
		Folder    string
		Tags      []string
		ExpiresAt *time.Time
	}

	// StorageSummary reports the account's ledger state after an operation.
	StorageSummary struct {
		UsedBytes  int64
		LimitBytes int64
	}

	Listing struct {
		Files   file.Records
		Storage StorageSummary
		Folders []string
		Owner   *user.User
	}
)

type FileService interface {
	ListFiles(ctx context.Context, userUUID user.UUID, q file.Query) (*Listing, error)
	UploadFile(ctx context.Context, userUUID user.UUID, fh *multipart.FileHeader, opts UploadOptions) (*file.Record, *StorageSummary, error)
	RenameFile(ctx context.Context, userUUID user.UUID, fileID, newName string) (*file.Record, error)
	DeleteFile(ctx context.Context, userUUID user.UUID, fileID string) (*StorageSummary, error)
	VerifyFile(ctx context.Context, fileID string) (*file.Record, string, file.Decision, error)
}
