package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Free-text descriptions arrive from scrapes and unauthenticated POSTs, so
// they are stripped of any markup once, at the storage boundary.
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips HTML from free-form text and trims whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

// SanitizeTextPtr sanitizes optional text, mapping an empty result to nil.
func SanitizeTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := SanitizeText(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
