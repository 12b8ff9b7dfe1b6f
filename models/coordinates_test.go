package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{"standard form", "(-9.1393,38.7223)", 38.7223, -9.1393, true},
		{"integers", "(100,13)", 13, 100, true},
		{"spaces tolerated", "( -9.1393 , 38.7223 )", 38.7223, -9.1393, true},
		{"empty", "", 0, 0, false},
		{"missing part", "(-9.1393)", 0, 0, false},
		{"not numeric", "(lng,lat)", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := ParseCoordinates(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLat, lat)
				assert.Equal(t, tt.wantLng, lng)
			}
		})
	}
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "(-9.1393,38.7223)", FormatCoordinates(38.7223, -9.1393))

	// Round-trips through the stored form
	lat, lng, ok := ParseCoordinates(FormatCoordinates(13.7563, 100.5018))
	assert.True(t, ok)
	assert.Equal(t, 13.7563, lat)
	assert.Equal(t, 100.5018, lng)
}
