package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/KaramelBytes/imaris-cli/internal/sample"
)

// Report is a markdown-friendly summary of one extraction run.
type Report struct {
	InputDir string
	Workbook string
	Files    int
	Read     int
	Skipped  int
	Failed   int
	Tables   []*AnnotatedTable
	Warnings []string
}

// Markdown renders a compact report for the terminal or a standalone doc.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[EXTRACTION SUMMARY]\n")
	if r.InputDir != "" {
		b.WriteString(fmt.Sprintf("Input: %s\n", r.InputDir))
	}
	if r.Workbook != "" {
		b.WriteString(fmt.Sprintf("Workbook: %s\n", r.Workbook))
	}
	b.WriteString(fmt.Sprintf("Files: %d (read %d, skipped %d, failed %d)\n", r.Files, r.Read, r.Skipped, r.Failed))

	for _, t := range r.Tables {
		b.WriteString(fmt.Sprintf("\n[SHEET %s]\n", t.Name))
		if len(t.Samples) == 0 {
			b.WriteString("- no samples\n")
			continue
		}
		counts := map[sample.Group]int{}
		for _, s := range t.Samples {
			counts[s.Group]++
		}
		parts := make([]string, 0, len(sample.Groups)+1)
		for _, g := range sample.Groups {
			parts = append(parts, fmt.Sprintf("%s=%d", g, counts[g]))
		}
		if n := counts[sample.Unknown]; n > 0 {
			parts = append(parts, fmt.Sprintf("unknown=%d", n))
		}
		b.WriteString(fmt.Sprintf("Samples: %d (%s)\n", len(t.Samples), strings.Join(parts, ", ")))
		b.WriteString("| Variable | NI | NI_AD | Tg | Tg_AD | p | |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
		for _, c := range t.Columns {
			b.WriteString("| ")
			b.WriteString(safeVal(c.Variable))
			for _, g := range sample.Groups {
				b.WriteString(" | ")
				b.WriteString(fmtNum(c.GroupMeans[g]))
			}
			b.WriteString(" | ")
			b.WriteString(fmtNum(c.P))
			b.WriteString(" | ")
			b.WriteString(c.Marker)
			b.WriteString(" |\n")
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func fmtNum(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprintf("%.4g", x)
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
