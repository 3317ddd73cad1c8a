package models

// MainNamespace is the only article namespace eligible for extraction.
const MainNamespace = 0

// ArticlePage is one unit of the corpus, alive only during extraction.
// Body is empty for redirects and stubs that carry no revision text.
type ArticlePage struct {
	Title     string
	Namespace int
	Body      string
}

// ExtractedFields holds the typed candidate fields mined from one eligible
// article. Absent values are empty strings, never a separate null state.
// BirthDate is either ISO YYYY-MM-DD or empty.
type ExtractedFields struct {
	JoinKey     string
	Description string
	BirthDate   string
	Occupation  string
	Birthplace  string
}

// Empty reports whether extraction produced no usable value at all.
// All-empty extractions are dropped rather than matched.
func (e ExtractedFields) Empty() bool {
	return e.Description == "" && e.BirthDate == "" && e.Occupation == "" && e.Birthplace == ""
}

// MatchedPair associates one reference record with at most one extraction.
// Extraction is nil when no accepted article resolved to the record's name.
type MatchedPair struct {
	Record     ReferenceRecord
	Extraction *ExtractedFields
}
