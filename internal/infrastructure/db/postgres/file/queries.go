package file

const (
	// id ASC keeps insertion order, the default display order.
	SelectFilesByOwner = `
		SELECT id, file_id, user_id, name, url, storage_key, file_type, size_bytes, size_label, uploaded_at, verify_url, qr_code, access, status, folder, tags, expires_at, deleted_at
		FROM files
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`
	InsertFile = `
		INSERT INTO files (file_id, user_id, name, url, storage_key, file_type, size_bytes, size_label, verify_url, qr_code, access, status, folder, tags, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING
		  id, file_id, user_id, name, url, storage_key, file_type, size_bytes, size_label, uploaded_at, verify_url, qr_code, access, status, folder, tags, expires_at, deleted_at
	`
	UpdateFileName = `
		UPDATE files
		SET name = $3
		WHERE user_id = $1 AND file_id = $2 AND deleted_at IS NULL
		RETURNING
		  id, file_id, user_id, name, url, storage_key, file_type, size_bytes, size_label, uploaded_at, verify_url, qr_code, access, status, folder, tags, expires_at, deleted_at
	`
	SoftDeleteFile = `
		UPDATE files
		SET deleted_at = now()
		WHERE user_id = $1 AND file_id = $2 AND deleted_at IS NULL
		RETURNING
		  id, file_id, user_id, name, url, storage_key, file_type, size_bytes, size_label, uploaded_at, verify_url, qr_code, access, status, folder, tags, expires_at, deleted_at
	`
	// Verification lookups have no owner context: file_id alone spans all
	// accounts (globally unique index).
	SelectFileByPublicID = `
		SELECT f.id, f.file_id, f.user_id, f.name, f.url, f.storage_key, f.file_type, f.size_bytes, f.size_label, f.uploaded_at, f.verify_url, f.qr_code, f.access, f.status, f.folder, f.tags, f.expires_at, f.deleted_at, u.name
		FROM files f
		JOIN users u ON u.id = f.user_id
		WHERE f.file_id = $1 AND f.deleted_at IS NULL
	`
)
