package user

import (
	domain "doc-vault-api/internal/domain/user"
	"doc-vault-api/pkg/bytefmt"
)

func ToResponseUser(uDomain domain.User) User {
	var u = User{
		UUID:         uDomain.UUID,
		Email:        uDomain.Email,
		Name:         uDomain.Name,
		StorageUsed:  bytefmt.Format(uDomain.StorageUsedBytes),
		StorageLimit: bytefmt.Format(uDomain.StorageLimitBytes),
		CreatedAt:    uDomain.CreatedAt,
	}

	return u
}
