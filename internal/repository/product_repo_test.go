package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductFilterLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, defaultListingLimit},
		{"negative falls back to default", -5, defaultListingLimit},
		{"in range is kept", 50, 50},
		{"above cap is clamped", 500, maxListingLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := ProductFilter{Limit: tt.limit}
			assert.Equal(t, tt.want, filter.limit())
		})
	}
}
