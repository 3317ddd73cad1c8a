// Package report renders operator-facing run summaries.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/sneiksus/VINF2025/internal/pipeline"
)

const rule = "------------------------------------------------"

// Render formats the merge summary as an aligned two-column table.
func Render(s *pipeline.Summary) string {
	rows := [][2]string{
		{"Reference records", fmt.Sprintf("%d", s.ReferenceRecords)},
		{"Matched", fmt.Sprintf("%d (%.2f%%)", s.MatchedRecords, s.MatchedPercent())},
		{"Fields updated", fmt.Sprintf("%d", s.FieldsUpdated)},
		{"Join-key collisions", fmt.Sprintf("%d", s.Collisions)},
		{"Pages scanned", fmt.Sprintf("%d", s.PagesScanned)},
		{"Pages extracted", fmt.Sprintf("%d", s.PagesExtracted)},
		{"Duration", s.Duration.Round(time.Millisecond).String()},
	}

	labelWidth := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder

	b.WriteString(rule + "\n")
	b.WriteString("📊 Merge Summary\n")
	b.WriteString(rule + "\n")

	for _, row := range rows {
		b.WriteString(runewidth.FillRight(row[0], labelWidth+2))
		b.WriteString(row[1])
		b.WriteString("\n")
	}

	b.WriteString(rule)

	return b.String()
}
