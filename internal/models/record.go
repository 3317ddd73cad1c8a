// Package models defines data structures shared by the merge pipeline stages.
package models

// ReferenceRecord is one row of the reference table. Name is the join key;
// every other field is optional and may be empty. Records are read-only
// inputs: stages copy them, never mutate them.
type ReferenceRecord struct {
	Name        string `json:"name"`
	Born        string `json:"born"`
	Occupation  string `json:"occupation"`
	Birthplace  string `json:"birthplace"`
	Description string `json:"description"`
}

// MergedRecord is one row of the pipeline output. Same shape as
// ReferenceRecord, with field values decided by the merger.
type MergedRecord struct {
	Name        string `json:"name"`
	Born        string `json:"born"`
	Occupation  string `json:"occupation"`
	Birthplace  string `json:"birthplace"`
	Description string `json:"description"`
}
