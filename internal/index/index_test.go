package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sneiksus/VINF2025/internal/logger"
)

func TestFieldName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"Birth Place", "birth_place"},
		{"Description", "description"},
	}

	for _, tt := range tests {
		if got := FieldName(tt.in); got != tt.want {
			t.Errorf("FieldName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildAndSearch(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "output.tsv")
	indexDir := filepath.Join(dir, "people_index")

	data := "Name\tBorn\tOccupation\tBirthplace\tDescription\n" +
		"Jane Doe\t1975-04-03\tengineer\tParis, France\tA French engineer.\n" +
		"John Roe\t1950-01-01\tWriter\tLondon\tA writer.\n"

	if err := os.WriteFile(dataPath, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	log := logger.NewLogger("error")

	count, err := Build(dataPath, indexDir, log)
	if err != nil {
		t.Fatalf("Build returned unexpected error: %v", err)
	}

	if count != 2 {
		t.Errorf("Build indexed %d documents, want 2", count)
	}

	result, err := Search(indexDir, "Paris", 10)
	if err != nil {
		t.Fatalf("Search returned unexpected error: %v", err)
	}

	if result.Total != 1 {
		t.Fatalf("Search(Paris) total = %d, want 1", result.Total)
	}

	if name, _ := result.Hits[0].Fields["name"].(string); name != "Jane Doe" {
		t.Errorf("hit name = %q, want Jane Doe", name)
	}

	// Rebuilding starts from scratch rather than appending.
	if _, err := Build(dataPath, indexDir, log); err != nil {
		t.Fatalf("rebuild returned unexpected error: %v", err)
	}

	result, err = Search(indexDir, "writer", 10)
	if err != nil {
		t.Fatalf("Search returned unexpected error: %v", err)
	}

	if result.Total != 1 {
		t.Errorf("Search(writer) total after rebuild = %d, want 1", result.Total)
	}
}

func TestSearch_MissingIndex(t *testing.T) {
	if _, err := Search(filepath.Join(t.TempDir(), "absent"), "query", 10); err == nil {
		t.Error("Search on missing index succeeded, want error")
	}
}

func TestBuild_MissingData(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "absent.tsv"), t.TempDir(), logger.NewLogger("error")); err == nil {
		t.Error("Build with missing data file succeeded, want error")
	}
}
