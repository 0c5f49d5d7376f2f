package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID   uint64
	User struct {
		ID           uint64
		UUID         uuid.UUID
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
