// Package slug derives URL-safe article identifiers from titles.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const suffixLength = 8

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate produces a lowercase, hyphen-joined slug from a title with a
// random 8-character hex suffix. Two calls with the same title yield
// different slugs; callers retry on a persistence-level unique
// violation rather than treating it as terminal.
func Generate(title string) string {
	base := Normalize(title)
	if base == "" {
		return suffix()
	}
	return base + "-" + suffix()
}

// Normalize collapses a title to its slug base: lowercased, runs of
// non-alphanumeric characters replaced by a single hyphen, leading and
// trailing hyphens trimmed.
func Normalize(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func suffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:suffixLength]
}
