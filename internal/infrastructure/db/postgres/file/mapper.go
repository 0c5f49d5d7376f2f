package file

import (
	domain "doc-vault-api/internal/domain/file"
	domainUser "doc-vault-api/internal/domain/user"
)

func fromDBModel(model *Record) *domain.Record {
	var rec = &domain.Record{
		ID:      model.FileID,
		OwnerID: (*domainUser.ID)(model.UserID),

		Name:       model.Name,
		URL:        model.URL,
		StorageKey: model.StorageKey,
		FileType:   model.FileType,
		SizeBytes:  model.SizeBytes,
		SizeLabel:  model.SizeLabel,

		UploadedAt: model.UploadedAt,
		VerifyURL:  model.VerifyURL,
		QRCode:     model.QRCode,

		Access:    domain.Access(model.Access),
		Status:    model.Status,
		Folder:    model.Folder,
		Tags:      model.Tags,
		ExpiresAt: model.ExpiresAt,
		DeletedAt: model.DeletedAt,
	}

	return rec
}

func fromDBModels(models *Records) domain.Records {
	recs := make(domain.Records, len(*models))
	for idx, m := range *models {
		recs[idx] = fromDBModel(m)
	}

	return recs
}
