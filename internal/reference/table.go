// Package reference reads and writes the tab-separated reference table.
package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sneiksus/VINF2025/internal/models"
)

// Table errors.
var (
	ErrEmptyTable        = errors.New("reference table has no header row")
	ErrMissingNameColumn = errors.New("reference table header is missing the Name column")
)

// Table holds the parsed reference input: the recognized columns in input
// order plus one record per data row.
type Table struct {
	Columns []string
	Records []models.ReferenceRecord
}

// recognized is the fixed column set of the reference schema. Columns
// outside it are ignored on read.
var recognized = map[string]bool{
	models.ColName:        true,
	models.ColBorn:        true,
	models.ColOccupation:  true,
	models.ColBirthplace:  true,
	models.ColDescription: true,
}

// Read loads a reference table from a TSV file with a header row.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse reference file: %w", err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	header := rows[0]
	position := make(map[string]int, len(header))

	table := &Table{}

	for i, col := range header {
		if !recognized[col] {
			continue
		}

		position[col] = i
		table.Columns = append(table.Columns, col)
	}

	if _, ok := position[models.ColName]; !ok {
		return nil, ErrMissingNameColumn
	}

	cell := func(row []string, col string) string {
		i, ok := position[col]
		if !ok || i >= len(row) {
			return ""
		}

		return row[i]
	}

	for _, row := range rows[1:] {
		table.Records = append(table.Records, models.ReferenceRecord{
			Name:        cell(row, models.ColName),
			Born:        cell(row, models.ColBorn),
			Occupation:  cell(row, models.ColOccupation),
			Birthplace:  cell(row, models.ColBirthplace),
			Description: cell(row, models.ColDescription),
		})
	}

	return table, nil
}

// HasColumn reports whether the input carried the given column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}

	return false
}

// Names returns all record names in input order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Records))
	for _, rec := range t.Records {
		names = append(names, rec.Name)
	}

	return names
}

// OutputColumns returns the output schema: the input columns followed by
// any previously-absent merge-target columns in canonical order.
func (t *Table) OutputColumns() []string {
	out := append([]string(nil), t.Columns...)

	for _, col := range models.MergeTargetColumns() {
		if !t.HasColumn(col) {
			out = append(out, col)
		}
	}

	return out
}

// Write publishes merged records as a TSV file atomically: the rows go to a
// temporary file in the destination directory and the file is renamed into
// place only on full success. A failed run leaves no partial output visible.
func Write(path string, columns []string, records []models.MergedRecord) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	w.Comma = '\t'

	writeErr := w.Write(columns)

	for _, rec := range records {
		if writeErr != nil {
			break
		}

		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fieldValue(rec, col)
		}

		writeErr = w.Write(row)
	}

	if writeErr == nil {
		w.Flush()
		writeErr = w.Error()
	}

	if closeErr := tmp.Close(); writeErr == nil {
		writeErr = closeErr
	}

	if writeErr != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to write output file: %w", writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("failed to publish output file: %w", err)
	}

	return nil
}

func fieldValue(rec models.MergedRecord, col string) string {
	switch col {
	case models.ColName:
		return rec.Name
	case models.ColBorn:
		return rec.Born
	case models.ColOccupation:
		return rec.Occupation
	case models.ColBirthplace:
		return rec.Birthplace
	case models.ColDescription:
		return rec.Description
	}

	return ""
}
