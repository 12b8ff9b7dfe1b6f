package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinates are persisted in the legacy "(lng,lat)" string format. Parsing
// is centralized here so no call site re-implements the format.

// ParseCoordinates parses a "(lng,lat)" string. Returns ok=false for empty or
// malformed input.
func ParseCoordinates(s string) (lat, lng float64, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lng, true
}

// FormatCoordinates renders lat/lng into the stored "(lng,lat)" form.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("(%g,%g)", lng, lat)
}
