package file

type RenameRequest struct {
	FileID  string `json:"file_id"`
	NewName string `json:"new_name"`
}
