package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Table(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	instantBefore := now.Add(-time.Nanosecond)

	tests := []struct {
		name string
		rec  Record
		want Decision
	}{
		{
			name: "public without expiry",
			rec:  Record{Access: AccessPublic},
			want: Allowed,
		},
		{
			name: "public with future expiry",
			rec:  Record{Access: AccessPublic, ExpiresAt: &future},
			want: Allowed,
		},
		{
			name: "public expired",
			rec:  Record{Access: AccessPublic, ExpiresAt: &past},
			want: DeniedExpired,
		},
		{
			name: "expiry exactly now is still allowed",
			rec:  Record{Access: AccessPublic, ExpiresAt: &now},
			want: Allowed,
		},
		{
			name: "expiry an instant before now is expired",
			rec:  Record{Access: AccessPublic, ExpiresAt: &instantBefore},
			want: DeniedExpired,
		},
		{
			name: "private",
			rec:  Record{Access: AccessPrivate},
			want: DeniedPrivate,
		},
		{
			name: "private and expired reports private, never expired",
			rec:  Record{Access: AccessPrivate, ExpiresAt: &past},
			want: DeniedPrivate,
		},
		{
			name: "unset access is treated as private",
			rec:  Record{},
			want: DeniedPrivate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(&tt.rec, now))
		})
	}
}
