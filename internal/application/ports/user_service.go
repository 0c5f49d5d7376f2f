package ports

import (
	"context"

	"doc-vault-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, email, name, passwordHash string) (*user.User, error)
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	RecordLogin(ctx context.Context, uuid user.UUID) error
}
