package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchInternalID(ctx context.Context, uuid UUID) (ID, error)
	TouchLastLogin(ctx context.Context, id ID) error

	FetchStorageUsage(ctx context.Context, id ID) (used, limit int64, err error)
	// AdmitStorage commits n bytes atomically with the limit as a ceiling;
	// admitted is false and usage is unchanged when the account would
	// overflow. This closes the read-modify-write race between concurrent
	// uploads.
	AdmitStorage(ctx context.Context, id ID, n int64) (newUsed int64, admitted bool, err error)
	// ReclaimStorage releases n bytes, flooring the counter at zero.
	ReclaimStorage(ctx context.Context, id ID, n int64) (newUsed int64, err error)

	AddFolder(ctx context.Context, id ID, folder string) error
}
