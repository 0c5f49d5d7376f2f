package user

const (
	SelectUserByID = `
		SELECT id, uuid, email, password_hash, provider, name, storage_used_bytes, storage_limit_bytes, folders, created_at, last_login_at, deleted_at
		FROM users
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectUserByEmail = `
		SELECT id, uuid, email, password_hash, provider, name, storage_used_bytes, storage_limit_bytes, folders, created_at, last_login_at, deleted_at
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertUser = `
		INSERT INTO users (email, password_hash, provider, name)
		VALUES ($1, $2, $3, $4)
		RETURNING
		  id, uuid, email, password_hash, provider, name, storage_used_bytes, storage_limit_bytes, folders, created_at, last_login_at, deleted_at
	`
	SelectIdByUUID  = `SELECT id FROM users WHERE uuid = $1::uuid`
	UpdateLastLogin = `UPDATE users SET last_login_at = now() WHERE id = $1`

	SelectStorageUsage = `
		SELECT storage_used_bytes, storage_limit_bytes
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`
	// Atomic increment-with-ceiling: the row only updates while the new
	// total still fits under the limit, so concurrent uploads cannot race
	// past the quota.
	AdmitStorageBytes = `
		UPDATE users
		SET storage_used_bytes = storage_used_bytes + $2
		WHERE id = $1 AND deleted_at IS NULL
		  AND storage_used_bytes + $2 <= storage_limit_bytes
		RETURNING storage_used_bytes
	`
	// GREATEST floors the counter at zero so reclaim drift can never push
	// the balance negative.
	ReclaimStorageBytes = `
		UPDATE users
		SET storage_used_bytes = GREATEST(0, storage_used_bytes - $2)
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING storage_used_bytes
	`
	AppendFolder = `
		UPDATE users
		SET folders = array_append(folders, $2)
		WHERE id = $1 AND deleted_at IS NULL AND NOT ($2 = ANY(folders))
	`
)
