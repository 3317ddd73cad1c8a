package models

// Canonical reference-table column names. Name is mandatory; the rest are
// optional merge targets.
const (
	ColName        = "Name"
	ColBorn        = "Born"
	ColOccupation  = "Occupation"
	ColBirthplace  = "Birthplace"
	ColDescription = "Description"
)

// MergeTargetColumns lists the optional columns in canonical order. Columns
// absent from the input table are appended to the output in this order.
func MergeTargetColumns() []string {
	return []string{ColBorn, ColOccupation, ColBirthplace, ColDescription}
}
