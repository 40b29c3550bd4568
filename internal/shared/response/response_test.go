package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
	}{
		{"exact multiple", 1, 10, 30, 3},
		{"partial last page", 1, 10, 25, 3},
		{"single record", 1, 10, 1, 1},
		{"empty result", 1, 10, 0, 0},
		{"limit one", 3, 1, 7, 7},
		{"total below limit", 1, 50, 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.limit, meta.Limit)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantPages, meta.Pages)
		})
	}
}
