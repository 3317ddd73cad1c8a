package report

import (
	"strings"
	"testing"
	"time"

	"github.com/sneiksus/VINF2025/internal/pipeline"
)

func TestRender(t *testing.T) {
	s := &pipeline.Summary{
		ReferenceRecords: 200,
		MatchedRecords:   50,
		FieldsUpdated:    7,
		Collisions:       1,
		PagesScanned:     100000,
		PagesExtracted:   60,
		Duration:         1500 * time.Millisecond,
	}

	out := Render(s)

	for _, want := range []string{
		"Reference records",
		"200",
		"50 (25.00%)",
		"Fields updated",
		"7",
		"Join-key collisions",
		"100000",
		"1.5s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}

	// Values line up in one column.
	lines := strings.Split(out, "\n")

	col := -1

	for _, line := range lines {
		i := strings.Index(line, "  ")
		if i < 0 {
			continue
		}

		j := i
		for j < len(line) && line[j] == ' ' {
			j++
		}

		if col == -1 {
			col = j
		} else if j != col {
			t.Errorf("misaligned value column in line %q", line)
		}
	}
}

func TestSummary_MatchedPercent_ZeroRecords(t *testing.T) {
	s := &pipeline.Summary{}

	if got := s.MatchedPercent(); got != 0 {
		t.Errorf("MatchedPercent() = %f, want 0", got)
	}
}
