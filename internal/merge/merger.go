package merge

import "github.com/sneiksus/VINF2025/internal/models"

// Merger combines a matched pair into one output record under the per-field
// conflict policy. The article corpus is treated as authoritative: when both
// sides are non-empty and disagree, the extracted value wins. That is policy,
// not validation; there is no confidence signal contesting it.
type Merger struct {
	present map[string]bool
}

// NewMerger creates a merger aware of which columns the input table carried.
// A merge-target column absent from the input is populated outright from
// extraction, bypassing the conflict policy and the update counter.
func NewMerger(columns []string) *Merger {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	return &Merger{present: present}
}

// Merge produces the output record for one pair plus the number of fields
// overwritten. Only replacing a non-empty, differing reference value counts
// as an update; filling an empty field does not.
func (m *Merger) Merge(pair models.MatchedPair) (models.MergedRecord, int) {
	var ext models.ExtractedFields
	if pair.Extraction != nil {
		ext = *pair.Extraction
	}

	updated := 0
	rec := pair.Record

	out := models.MergedRecord{
		Name:       rec.Name,
		Born:       m.mergeField(rec.Born, ext.BirthDate, models.ColBorn, &updated),
		Occupation: m.mergeField(rec.Occupation, ext.Occupation, models.ColOccupation, &updated),
		Birthplace: m.mergeField(rec.Birthplace, ext.Birthplace, models.ColBirthplace, &updated),
	}

	// Description never overwrites an existing value.
	switch {
	case !m.present[models.ColDescription], rec.Description == "":
		out.Description = ext.Description
	default:
		out.Description = rec.Description
	}

	return out, updated
}

// mergeField applies the overwritable-field policy.
func (m *Merger) mergeField(ref, ext, column string, updated *int) string {
	if !m.present[column] {
		return ext
	}

	if ref == "" {
		return ext
	}

	if ext == "" || ext == ref {
		return ref
	}

	*updated++

	return ext
}
