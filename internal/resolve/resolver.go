// Package resolve normalizes article titles to join keys and applies the
// disambiguation rule deciding which articles may act as match sources.
package resolve

import (
	"regexp"
	"strings"
)

// Resolver derives join keys from article titles.
type Resolver struct {
	qualifierPattern *regexp.Regexp
}

// NewResolver creates a new resolver instance.
func NewResolver() *Resolver {
	return &Resolver{
		// Trailing parenthetical disambiguation qualifier, e.g.
		// "John Smith (actor)".
		qualifierPattern: regexp.MustCompile(`\s*\([^)]+\)$`),
	}
}

// JoinKey strips a trailing parenthetical qualifier from a title.
func (r *Resolver) JoinKey(title string) string {
	return strings.TrimSpace(r.qualifierPattern.ReplaceAllString(title, ""))
}

// Resolve returns the join key for a title and whether the article is an
// acceptable match source. Titles that needed qualifier stripping are
// excluded entirely: several same-named subjects could otherwise supply
// facts for one reference record. Recall is traded for determinism.
func (r *Resolver) Resolve(title string) (string, bool) {
	key := r.JoinKey(title)

	return key, key == title
}
