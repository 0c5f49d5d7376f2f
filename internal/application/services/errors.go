package services

import (
	"errors"
	"fmt"

	"doc-vault-api/pkg/bytefmt"
)

var ErrFileNotFound = errors.New("file not found")

// QuotaExceededError carries the ledger state so callers can tell the
// requester how much room is left.
type QuotaExceededError struct {
	UsedBytes  int64
	LimitBytes int64
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf(
		"storage quota exceeded: %s of %s used",
		bytefmt.Format(e.UsedBytes),
		bytefmt.Format(e.LimitBytes),
	)
}
