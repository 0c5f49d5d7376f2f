package file

import (
	domain "doc-vault-api/internal/domain/file"
)

func ToResponseFile(r domain.Record) File {
	var f = File{
		ID:         r.ID,
		Name:       r.Name,
		URL:        r.URL,
		FileType:   r.FileType,
		Size:       r.SizeLabel,
		UploadedAt: r.UploadedAt,
		VerifyURL:  r.VerifyURL,
		QRCode:     r.QRCode,
		Access:     string(r.Access),
		Status:     r.Status,
		Folder:     r.Folder,
		Tags:       r.Tags,
		ExpiresAt:  r.ExpiresAt,
	}

	return f
}

func ToResponseFiles(rs domain.Records) Files {
	fs := make(Files, len(rs))
	for idx, r := range rs {
		fs[idx] = ToResponseFile(*r)
	}

	return fs
}

func ToPublicFile(r domain.Record) PublicFile {
	return PublicFile{
		ID:         r.ID,
		Name:       r.Name,
		URL:        r.URL,
		FileType:   r.FileType,
		Size:       r.SizeLabel,
		UploadedAt: r.UploadedAt,
		Status:     r.Status,
	}
}
