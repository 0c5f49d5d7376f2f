package file

import (
	"context"

	"doc-vault-api/internal/domain/user"
)

type Repository interface {
	// FetchFiles returns the owner's records in insertion order.
	FetchFiles(ctx context.Context, ownerID user.ID) (Records, error)
	CreateFile(ctx context.Context, ownerID user.ID, req *Record) (*Record, error)
	// RenameFile returns nil when no record with id exists in the owner's
	// collection; all other fields are left untouched.
	RenameFile(ctx context.Context, ownerID user.ID, id, newName string) (*Record, error)
	// RemoveFile deletes and returns the record (nil when absent); the
	// caller needs the removed record for ledger reclaim and storage
	// cleanup.
	RemoveFile(ctx context.Context, ownerID user.ID, id string) (*Record, error)
	// FetchByPublicID looks up a record by id alone, across all accounts,
	// and reports the owner's display name for the public verify view.
	FetchByPublicID(ctx context.Context, id string) (*Record, string, error)
}
