// Package merge joins reference records to extracted article facts and
// combines them under the per-field conflict policy.
package merge

import "github.com/sneiksus/VINF2025/internal/models"

// Matcher associates reference records with extractions by join key. The
// lookup table is built once from the (much smaller) reference name set and
// read-only afterward, so it can be shared across workers.
type Matcher struct {
	names       map[string]bool
	extractions map[string]models.ExtractedFields
	collisions  int
}

// NewMatcher creates a matcher restricted to the given reference names.
// Extractions whose join key matches no reference record are discarded at
// the door, mirroring a broadcast join against the name set.
func NewMatcher(names []string) *Matcher {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}

	return &Matcher{
		names:       set,
		extractions: make(map[string]models.ExtractedFields),
	}
}

// WantsKey reports whether a join key belongs to a reference record. Workers
// use it to skip expensive extraction for articles that cannot match.
func (m *Matcher) WantsKey(key string) bool {
	return m.names[key]
}

// Add registers an accepted extraction under its join key. When several
// accepted articles share a key, the first seen wins; later ones count as
// collisions. Returns whether the extraction was kept.
func (m *Matcher) Add(fields models.ExtractedFields) bool {
	if !m.names[fields.JoinKey] {
		return false
	}

	if _, exists := m.extractions[fields.JoinKey]; exists {
		m.collisions++

		return false
	}

	m.extractions[fields.JoinKey] = fields

	return true
}

// Match produces the pair for one reference record. Every record yields
// exactly one pair; records without an extraction keep a nil one.
func (m *Matcher) Match(rec models.ReferenceRecord) models.MatchedPair {
	pair := models.MatchedPair{Record: rec}

	if fields, ok := m.extractions[rec.Name]; ok {
		pair.Extraction = &fields
	}

	return pair
}

// Matched returns the number of join keys that found an extraction.
func (m *Matcher) Matched() int {
	return len(m.extractions)
}

// Collisions returns how many accepted extractions lost first-seen-wins.
func (m *Matcher) Collisions() int {
	return m.collisions
}
