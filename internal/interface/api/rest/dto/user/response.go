package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UUID         uuid.UUID `json:"uuid"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	StorageUsed  string    `json:"storage_used"`
	StorageLimit string    `json:"storage_limit"`
	CreatedAt    time.Time `json:"created_at"`
}
