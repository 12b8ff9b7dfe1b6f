package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRating(t *testing.T) {
	tests := []struct {
		name        string
		value       *float64
		scale       float64
		wantPercent float64
		wantBuckets int
	}{
		{"full scale", f64(10), 10, 100, 5},
		{"midpoint", f64(5), 10, 50, 3},
		{"low score", f64(1), 10, 10, 1},
		{"bucket boundary", f64(4), 10, 40, 2},
		{"just above boundary", f64(4.1), 10, 41, 3},
		{"five point scale", f64(4.5), 5, 90, 5},
		{"clamped above scale", f64(12), 10, 100, 5},
		{"clamped below zero", f64(-3), 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rating(tt.value, tt.scale)
			assert.True(t, got.Available)
			assert.InDelta(t, tt.wantPercent, got.Percent, 0.0001)
			assert.Equal(t, tt.wantBuckets, got.Buckets)
		})
	}
}

func TestRatingNotAvailable(t *testing.T) {
	assert.Equal(t, RatingDisplay{}, Rating(nil, 10))
	assert.Equal(t, RatingDisplay{}, Rating(f64(5), 0))
	assert.Equal(t, RatingDisplay{}, Rating(f64(5), -1))
}
