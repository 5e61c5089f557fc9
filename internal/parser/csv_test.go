package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/imaris-cli/internal/parser"
)

func TestReadFileCSV_Semicolon(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "exp_008_NI_microglia1.3.csv")
	content := "Average;;\n" +
		"Variable;Mean;Unit\n" +
		"Area;10.0;um^2\n" +
		"Volume;4\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := parser.ReadFile(p)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[2][0] != "Area" || rows[2][1] != "10.0" {
		t.Fatalf("unexpected row: %q", rows[2])
	}
	if len(rows[3]) != 3 || rows[3][2] != "" {
		t.Fatalf("expected padded row, got %q", rows[3])
	}
}
