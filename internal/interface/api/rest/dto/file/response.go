package file

import "time"

type (
	// File is the owner's view of a record.
	File struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		URL        string     `json:"url"`
		FileType   string     `json:"type"`
		Size       string     `json:"size"`
		UploadedAt time.Time  `json:"uploaded_at"`
		VerifyURL  string     `json:"verify_url"`
		QRCode     string     `json:"qr_code,omitempty"`
		Access     string     `json:"access"`
		Status     string     `json:"status"`
		Folder     string     `json:"folder"`
		Tags       []string   `json:"tags,omitempty"`
		ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	}
	Files []File

	// PublicFile is the reduced view returned by /verify: no storage key,
	// no folder or tags, nothing an anonymous verifier has business seeing.
	PublicFile struct {
		ID         string    `json:"id"`
		Name       string    `json:"name"`
		URL        string    `json:"url"`
		FileType   string    `json:"type"`
		Size       string    `json:"size"`
		UploadedAt time.Time `json:"uploaded_at"`
		Status     string    `json:"status"`
	}

	Owner struct {
		Name string `json:"name"`
	}

	VerifyResponse struct {
		File     PublicFile `json:"file"`
		Owner    Owner      `json:"owner"`
		Verified bool       `json:"verified"`
	}

	UploadResponse struct {
		File         File   `json:"file"`
		StorageUsed  string `json:"storage_used"`
		StorageLimit string `json:"storage_limit"`
	}

	ListResponse struct {
		Files        Files       `json:"files"`
		TotalFiles   int         `json:"total_files"`
		StorageUsed  string      `json:"storage_used"`
		StorageLimit string      `json:"storage_limit"`
		Folders      []string    `json:"folders"`
		User         UserSummary `json:"user"`
	}

	UserSummary struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	DeleteResponse struct {
		FileID      string `json:"file_id"`
		StorageUsed string `json:"storage_used"`
	}
)
