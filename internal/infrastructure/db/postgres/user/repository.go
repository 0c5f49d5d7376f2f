package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"doc-vault-api/internal/domain/user"
	"doc-vault-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uuid.String()).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Provider,
		&u.Name,

		&u.StorageUsedBytes,
		&u.StorageLimitBytes,
		&u.Folders,

		&u.CreatedAt,
		&u.LastLoginAt,
		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByEmail, email).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Provider,
		&u.Name,

		&u.StorageUsedBytes,
		&u.StorageLimitBytes,
		&u.Folders,

		&u.CreatedAt,
		&u.LastLoginAt,
		&u.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Email, req.PasswordHash, req.Provider, req.Name,
	).Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.PasswordHash,
		&u.Provider,
		&u.Name,

		&u.StorageUsedBytes,
		&u.StorageLimitBytes,
		&u.Folders,

		&u.CreatedAt,
		&u.LastLoginAt,
		&u.DeletedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchInternalID(ctx context.Context, uuid user.UUID) (user.ID, error) {
	var id uint64
	if err := r.db.QueryRow(ctx, SelectIdByUUID, uuid.String()).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user not found by uuid %s: %w", uuid.String(), err)
		}
		return 0, err
	}

	return user.ID(id), nil
}

func (r *Repository) TouchLastLogin(ctx context.Context, id user.ID) error {
	_, err := r.db.Exec(ctx, UpdateLastLogin, id)
	return err
}

func (r *Repository) FetchStorageUsage(ctx context.Context, id user.ID) (int64, int64, error) {
	var used, limit int64
	if err := r.db.QueryRow(ctx, SelectStorageUsage, id).Scan(&used, &limit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, 0, fmt.Errorf("user %d not found: %w", id, err)
		}
		return 0, 0, err
	}

	return used, limit, nil
}

func (r *Repository) AdmitStorage(ctx context.Context, id user.ID, n int64) (int64, bool, error) {
	var newUsed int64
	err := r.db.QueryRow(ctx, AdmitStorageBytes, id, n).Scan(&newUsed)
	if err != nil {
		// no row updated means the ceiling held: not admitted, usage intact
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return newUsed, true, nil
}

func (r *Repository) ReclaimStorage(ctx context.Context, id user.ID, n int64) (int64, error) {
	var newUsed int64
	if err := r.db.QueryRow(ctx, ReclaimStorageBytes, id, n).Scan(&newUsed); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %d not found: %w", id, err)
		}
		return 0, err
	}

	return newUsed, nil
}

func (r *Repository) AddFolder(ctx context.Context, id user.ID, folder string) error {
	_, err := r.db.Exec(ctx, AppendFolder, id, folder)
	return err
}
