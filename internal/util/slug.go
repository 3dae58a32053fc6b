// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

// Matches runs of anything that cannot appear in a slug.
var nonSlugRunRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name.
// The slug is computed once at creation time and never re-derived.
//
// Rules:
//  1. Lowercase
//  2. Collapse every run of non-alphanumeric characters to a single dash
//  3. Trim leading/trailing dashes
//
// Examples:
//
//	"Acme Inc."        → "acme-inc"
//	"Feature Requests" → "feature-requests"
//	"  Spaced  Out  "  → "spaced-out"
//	"--edge--"         → "edge"
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlugRunRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
