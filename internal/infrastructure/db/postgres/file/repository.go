package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"doc-vault-api/internal/domain/file"
	"doc-vault-api/internal/domain/user"
	"doc-vault-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) file.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchFiles(ctx context.Context, ownerID user.ID) (file.Records, error) {
	rows, err := r.db.Query(ctx, SelectFilesByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs Records
	for rows.Next() {
		rec := new(Record)

		if err = scanRecord(rows, rec); err != nil {
			return nil, err
		}

		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&recs), nil
}

func (r *Repository) CreateFile(ctx context.Context, ownerID user.ID, req *file.Record) (*file.Record, error) {
	rec := new(Record)

	err := scanRecord(r.db.QueryRow(
		ctx,
		InsertFile,
		req.ID, ownerID, req.Name, req.URL, req.StorageKey, req.FileType,
		req.SizeBytes, req.SizeLabel, req.VerifyURL, req.QRCode,
		string(req.Access), req.Status, req.Folder, req.Tags, req.ExpiresAt,
	), rec)
	if err != nil {
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) RenameFile(ctx context.Context, ownerID user.ID, id, newName string) (*file.Record, error) {
	rec := new(Record)

	err := scanRecord(r.db.QueryRow(ctx, UpdateFileName, ownerID, id, newName), rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) RemoveFile(ctx context.Context, ownerID user.ID, id string) (*file.Record, error) {
	rec := new(Record)

	err := scanRecord(r.db.QueryRow(ctx, SoftDeleteFile, ownerID, id), rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(rec), err
}

func (r *Repository) FetchByPublicID(ctx context.Context, id string) (*file.Record, string, error) {
	rec := new(Record)
	var ownerName string

	row := r.db.QueryRow(ctx, SelectFileByPublicID, id)
	err := row.Scan(
		&rec.ID,
		&rec.FileID,
		&rec.UserID,

		&rec.Name,
		&rec.URL,
		&rec.StorageKey,
		&rec.FileType,
		&rec.SizeBytes,
		&rec.SizeLabel,

		&rec.UploadedAt,
		&rec.VerifyURL,
		&rec.QRCode,

		&rec.Access,
		&rec.Status,
		&rec.Folder,
		&rec.Tags,
		&rec.ExpiresAt,
		&rec.DeletedAt,
		&ownerName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", err
	}

	return fromDBModel(rec), ownerName, nil
}

func scanRecord(row pgx.Row, rec *Record) error {
	return row.Scan(
		&rec.ID,
		&rec.FileID,
		&rec.UserID,

		&rec.Name,
		&rec.URL,
		&rec.StorageKey,
		&rec.FileType,
		&rec.SizeBytes,
		&rec.SizeLabel,

		&rec.UploadedAt,
		&rec.VerifyURL,
		&rec.QRCode,

		&rec.Access,
		&rec.Status,
		&rec.Folder,
		&rec.Tags,
		&rec.ExpiresAt,
		&rec.DeletedAt,
	)
}
