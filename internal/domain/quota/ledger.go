// Package quota holds the storage-ledger arithmetic: whether an incoming
// file fits under the account limit and how usage moves on admit/reclaim.
// The durable commit is an atomic SQL update in the user repository; these
// functions back the request-time pre-check and keep the rules testable.
package quota

import (
	"doc-vault-api/internal/domain/file"
	"doc-vault-api/pkg/bytefmt"
)

// DefaultLimitBytes is 5 GiB.
const DefaultLimitBytes = int64(5 << 30)

func CanAdmit(used, limit, incoming int64) bool {
	return used+incoming <= limit
}

func Admit(used, incoming int64) int64 {
	return used + incoming
}

// Reclaim floors at zero so accounting drift never produces a negative
// balance.
func Reclaim(used, reclaimed int64) int64 {
	if reclaimed >= used {
		return 0
	}
	return used - reclaimed
}

// ReclaimBytes is how many bytes deleting f gives back. The stored raw
// count is authoritative; records that predate it fall back to the lossy
// size label, and an unparseable label contributes nothing.
func ReclaimBytes(f *file.Record) int64 {
	if f == nil {
		return 0
	}
	if f.SizeBytes > 0 {
		return f.SizeBytes
	}
	n, ok := bytefmt.Parse(f.SizeLabel)
	if !ok {
		return 0
	}
	return n
}
