package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestRowCount(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	count, err := RowCount(f, "Sheet1")
	if err != nil {
		t.Fatalf("RowCount failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 rows on a new sheet, got %d", count)
	}

	f.SetCellValue("Sheet1", "A1", "a")
	f.SetCellValue("Sheet1", "B3", "b")
	if count, _ = RowCount(f, "Sheet1"); count != 3 {
		t.Errorf("Expected 3 rows, got %d", count)
	}

	// A row carrying only a height still counts.
	if err := f.SetRowHeight("Sheet1", 10, 30); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	if count, _ = RowCount(f, "Sheet1"); count != 10 {
		t.Errorf("Expected 10 rows, got %d", count)
	}
}

func TestRowCountMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := RowCount(f, "Nope"); err == nil {
		t.Error("Expected an error for a missing sheet")
	}
}

func TestMaxTextLengths(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "abc")
	f.SetCellValue(sheetName, "A2", "abcdef")
	f.SetCellValue(sheetName, "B5", 123456.5)
	f.SetCellValue(sheetName, "C1", "Perché")
	f.SetCellValue(sheetName, "D3", false)
	f.SetCellValue(sheetName, "E1", "ignored beyond cols")

	lengths, err := MaxTextLengths(f, sheetName, 4)
	if err != nil {
		t.Fatalf("MaxTextLengths failed: %v", err)
	}

	expected := []int{6, 8, 6, 5}
	if len(lengths) != len(expected) {
		t.Fatalf("Expected %d lengths, got %d", len(expected), len(lengths))
	}
	for i := range expected {
		if lengths[i] != expected[i] {
			t.Errorf("Column %d: expected %d, got %d", i+1, expected[i], lengths[i])
		}
	}
}

func TestTextLength(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 0},
		{"Codice", 6},
		{"Configurazione", 14},
		{"città", 5},
	}

	for _, tt := range tests {
		if result := TextLength(tt.input); result != tt.expected {
			t.Errorf("TextLength(%q) = %d, expected %d", tt.input, result, tt.expected)
		}
	}
}
