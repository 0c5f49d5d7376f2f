package user

import (
	"time"

	"github.com/google/uuid"
)

const ProviderCredentials = "credentials"

type (
	ID   uint64
	UUID = uuid.UUID
	// User is a storage account. StorageUsedBytes is a maintained running
	// counter, not a sum recomputed from the file records; it only moves
	// on upload admit and delete reclaim and never goes negative.
	User struct {
		UUID         UUID
		Email        string
		PasswordHash *string
		Provider     string
		Name         string

		StorageUsedBytes  int64
		StorageLimitBytes int64
		Folders           []string

		CreatedAt   time.Time
		LastLoginAt *time.Time
		DeletedAt   *time.Time
	}
	Users []*User
)
