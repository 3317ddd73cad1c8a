// Package index builds and queries the full-text index over the merged
// output. Every column becomes a free-text field; column names are lowered
// and space-free so they are safe field identifiers.
package index

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"

	"github.com/sneiksus/VINF2025/internal/logger"
)

const batchSize = 1000

// FieldName normalizes a TSV column name to an index field identifier.
func FieldName(column string) string {
	return strings.ReplaceAll(strings.ToLower(column), " ", "_")
}

// Build recreates the index directory from scratch and indexes every row of
// the merged TSV as one document. Returns the number of documents indexed.
func Build(dataPath, indexDir string, log *logger.Logger) (int, error) {
	f, err := os.Open(dataPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read data header: %w", err)
	}

	fields := make([]string, len(header))
	for i, col := range header {
		fields[i] = FieldName(col)
	}

	// Fresh index every build.
	if err := os.RemoveAll(indexDir); err != nil {
		return 0, fmt.Errorf("failed to clear index directory: %w", err)
	}

	idx, err := bleve.New(indexDir, bleve.NewIndexMapping())
	if err != nil {
		return 0, fmt.Errorf("failed to create index: %w", err)
	}
	defer idx.Close()

	batch := idx.NewBatch()
	count := 0

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			return count, fmt.Errorf("failed to read data row: %w", err)
		}

		doc := make(map[string]string, len(fields))

		for i, name := range fields {
			if i < len(row) && row[i] != "" {
				doc[name] = row[i]
			}
		}

		if err := batch.Index(strconv.Itoa(count), doc); err != nil {
			return count, fmt.Errorf("failed to index row %d: %w", count, err)
		}

		count++

		if batch.Size() >= batchSize {
			if err := idx.Batch(batch); err != nil {
				return count, fmt.Errorf("failed to commit index batch: %w", err)
			}

			batch.Reset()
		}
	}

	if batch.Size() > 0 {
		if err := idx.Batch(batch); err != nil {
			return count, fmt.Errorf("failed to commit index batch: %w", err)
		}
	}

	log.Info("index built", "documents", count, "dir", indexDir)

	return count, nil
}
