package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doc-vault-api/internal/domain/file"
)

func TestCanAdmit_Table(t *testing.T) {
	tests := []struct {
		name     string
		used     int64
		limit    int64
		incoming int64
		want     bool
	}{
		{"fits with room", 0, DefaultLimitBytes, 1 << 20, true},
		{"fills exactly to limit", 4368709120, DefaultLimitBytes, 1000000000, true},
		{"one byte over", DefaultLimitBytes, DefaultLimitBytes, 1, false},
		{"near-full account rejects large file", 4900000000, 5368709120, 500000000, false},
		{"zero incoming always fits", DefaultLimitBytes, DefaultLimitBytes, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAdmit(tt.used, tt.limit, tt.incoming))
		})
	}
}

func TestReclaim_FloorsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), Reclaim(100, 100))
	assert.Equal(t, int64(0), Reclaim(100, 5000), "drifted reclaim must clamp, not go negative")
	assert.Equal(t, int64(60), Reclaim(100, 40))

	// repeated deletes on a drifted ledger stay at zero
	used := int64(1024)
	for i := 0; i < 5; i++ {
		used = Reclaim(used, 2048)
	}
	assert.Equal(t, int64(0), used)
}

func TestReclaimBytes(t *testing.T) {
	tests := []struct {
		name string
		rec  *file.Record
		want int64
	}{
		{"nil record", nil, 0},
		{"raw bytes win over label", &file.Record{SizeBytes: 1500, SizeLabel: "1.00 KB"}, 1500},
		{"label fallback", &file.Record{SizeLabel: "1.00 MB"}, 1 << 20},
		{"unparseable label contributes zero", &file.Record{SizeLabel: "huge"}, 0},
		{"empty record", &file.Record{}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ReclaimBytes(tt.rec))
		})
	}
}
