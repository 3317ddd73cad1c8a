package reference

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sneiksus/VINF2025/internal/models"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reference.tsv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	return path
}

func TestRead(t *testing.T) {
	path := writeTemp(t, "Name\tBorn\tOccupation\nJane Doe\t\tEngineer\nJohn Roe\t1950-01-01\tWriter\n")

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read returned unexpected error: %v", err)
	}

	if len(table.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(table.Records))
	}

	if got := table.Records[0]; got.Name != "Jane Doe" || got.Occupation != "Engineer" || got.Born != "" {
		t.Errorf("Records[0] = %+v", got)
	}

	if got := table.Records[1]; got.Born != "1950-01-01" {
		t.Errorf("Records[1].Born = %q, want 1950-01-01", got.Born)
	}

	if !table.HasColumn(models.ColBorn) || table.HasColumn(models.ColBirthplace) {
		t.Errorf("Columns = %v", table.Columns)
	}
}

func TestRead_MissingNameColumn(t *testing.T) {
	path := writeTemp(t, "Born\tOccupation\n1950-01-01\tWriter\n")

	if _, err := Read(path); err != ErrMissingNameColumn {
		t.Errorf("Read error = %v, want ErrMissingNameColumn", err)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := writeTemp(t, "")

	if _, err := Read(path); err != ErrEmptyTable {
		t.Errorf("Read error = %v, want ErrEmptyTable", err)
	}
}

func TestRead_IgnoresUnknownColumns(t *testing.T) {
	path := writeTemp(t, "Name\tNickname\tBorn\nJane Doe\tJD\t1975-04-03\n")

	table, err := Read(path)
	if err != nil {
		t.Fatalf("Read returned unexpected error: %v", err)
	}

	if len(table.Columns) != 2 {
		t.Errorf("Columns = %v, want [Name Born]", table.Columns)
	}

	if table.Records[0].Born != "1975-04-03" {
		t.Errorf("Born = %q, want 1975-04-03", table.Records[0].Born)
	}
}

func TestTable_OutputColumns(t *testing.T) {
	table := &Table{Columns: []string{models.ColName, models.ColOccupation}}

	got := table.OutputColumns()
	want := []string{
		models.ColName, models.ColOccupation,
		models.ColBorn, models.ColBirthplace, models.ColDescription,
	}

	if len(got) != len(want) {
		t.Fatalf("OutputColumns() = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OutputColumns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.tsv")

	columns := []string{models.ColName, models.ColBorn}
	records := []models.MergedRecord{
		{Name: "Jane Doe", Born: "1975-04-03"},
		{Name: "John Roe"},
	}

	if err := Write(path, columns, records); err != nil {
		t.Fatalf("Write returned unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	want := "Name\tBorn\nJane Doe\t1975-04-03\nJohn Roe\t\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestWrite_UnwritableDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "output.tsv")

	if err := Write(path, []string{models.ColName}, nil); err == nil {
		t.Error("Write to missing directory succeeded, want error")
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("partial output file exists, want none")
	}
}
