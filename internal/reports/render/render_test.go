package render

import (
	"bytes"
	"strings"
	"testing"
)

func sampleTable() Table {
	return Table{
		Sheet:   "Prospects",
		Headers: []string{"DNI", "Full Name", "Status"},
		Rows: [][]any{
			{"12345678", "Maria Quispe", "enrolled"},
			{"87654321", "Jorge Flores", "new"},
		},
	}
}

func TestCSV_HeaderAndRowOrder(t *testing.T) {
	body, err := CSV(sampleTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "DNI,Full Name,Status" {
		t.Fatalf("unexpected header line %q", lines[0])
	}
	if lines[1] != "12345678,Maria Quispe,enrolled" {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}

func TestCSV_NilAndShortRows(t *testing.T) {
	table := Table{
		Headers: []string{"a", "b", "c"},
		Rows:    [][]any{{"x", nil}},
	}

	body, err := CSV(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if lines[1] != "x,," {
		t.Fatalf("expected padded row, got %q", lines[1])
	}
}

func TestExcel_ProducesWorkbook(t *testing.T) {
	body, err := Excel(sampleTable())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("expected non-empty workbook")
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(body, []byte("PK")) {
		t.Fatalf("expected zip signature, got %q", body[:2])
	}
}
