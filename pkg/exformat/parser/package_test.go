package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestCheckPackage(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Dati"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}

	names, err := CheckPackage(buf.Bytes())
	if err != nil {
		t.Fatalf("CheckPackage failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Sheet1" || names[1] != "Dati" {
		t.Errorf("Unexpected sheet names: %v", names)
	}
}

func TestCheckPackageRejects(t *testing.T) {
	var zipNoWorkbook bytes.Buffer
	zw := zip.NewWriter(&zipNoWorkbook)
	w, _ := zw.Create("word/document.xml")
	w.Write([]byte("<document/>"))
	zw.Close()

	var zipNoSheets bytes.Buffer
	zw = zip.NewWriter(&zipNoSheets)
	w, _ = zw.Create("xl/workbook.xml")
	w.Write([]byte(`<workbook><sheets></sheets></workbook>`))
	zw.Close()

	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"plain text", []byte("not a spreadsheet"), ErrNotZip},
		{"zip without workbook", zipNoWorkbook.Bytes(), ErrNoWorkbook},
		{"workbook without sheets", zipNoSheets.Bytes(), ErrNoWorksheet},
	}

	for _, tt := range tests {
		_, err := CheckPackage(tt.data)
		if !errors.Is(err, tt.expected) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, err)
		}
	}
}
