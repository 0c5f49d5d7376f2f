package user

import (
	domain "doc-vault-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		UUID:         model.UUID,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Provider:     model.Provider,
		Name:         model.Name,

		StorageUsedBytes:  model.StorageUsedBytes,
		StorageLimitBytes: model.StorageLimitBytes,
		Folders:           model.Folders,

		CreatedAt:   model.CreatedAt,
		LastLoginAt: model.LastLoginAt,
		DeletedAt:   model.DeletedAt,
	}

	return u
}
