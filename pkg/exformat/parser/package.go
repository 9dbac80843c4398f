package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// Package-level problems detected before the workbook is handed to excelize.
var (
	ErrNotZip      = errors.New("not a zip package")
	ErrNoWorkbook  = errors.New("package has no xl/workbook.xml part")
	ErrNoWorksheet = errors.New("workbook declares no sheets")
)

const workbookPart = "xl/workbook.xml"

// CheckPackage verifies that data is an OOXML spreadsheet package and returns
// the sheet names declared by its workbook part, in order.
func CheckPackage(data []byte) ([]string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, ErrNotZip
	}

	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, ErrNoWorkbook
	}

	names := parseWorkbookSheets(workbookXML)
	if len(names) == 0 {
		return nil, ErrNoWorksheet
	}
	return names, nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

// parseWorkbookSheets returns the names of the <sheet> elements of workbook.xml.
func parseWorkbookSheets(data []byte) []string {
	var names []string
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			for _, attr := range se.Attr {
				if attr.Name.Local == "name" && attr.Value != "" {
					names = append(names, attr.Value)
				}
			}
		}
	}

	return names
}
