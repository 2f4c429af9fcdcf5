package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugEdgeHyphens  = regexp.MustCompile(`^-+|-+$`)
)

// Slugify turns a listing title into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens, edges trimmed.
// "Smart Hut Apartments" -> "smart-hut-apartments".
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugEdgeHyphens.ReplaceAllString(s, "")
	return s
}
