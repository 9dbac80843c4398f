// Package parser provides read-side workbook helpers.
package parser

import (
	"github.com/xuri/excelize/v2"
)

// rawValues makes the iterator return stored values instead of number-formatted text.
var rawValues = excelize.Options{RawCellValue: true}

// ExtractWindow extracts up to maxRows rows of a sheet, restricted to the given
// 1-based columns. Missing cells become empty strings, so every returned row
// has len(cols) entries.
func ExtractWindow(f *excelize.File, sheetName string, maxRows int, cols []int) ([][]string, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result [][]string
	for rows.Next() && len(result) < maxRows {
		row, err := rows.Columns(rawValues)
		if err != nil {
			return nil, err
		}
		rowNum := len(result) + 1
		values := make([]string, len(cols))
		for i, col := range cols {
			if col >= 1 && col <= len(row) {
				if values[i], err = displayValue(f, sheetName, col, rowNum, row[col-1]); err != nil {
					return nil, err
				}
			}
		}
		result = append(result, values)
	}
	if err := rows.Error(); err != nil {
		return nil, err
	}

	return result, nil
}

// displayValue converts a raw cell value to its display string. Booleans are
// stored as 1 and 0 and read back as "true" and "false".
func displayValue(f *excelize.File, sheetName string, col, row int, raw string) (string, error) {
	if raw != "1" && raw != "0" {
		return raw, nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	cellType, err := f.GetCellType(sheetName, cell)
	if err != nil {
		return "", err
	}
	if cellType != excelize.CellTypeBool {
		return raw, nil
	}
	if raw == "1" {
		return "true", nil
	}
	return "false", nil
}

// RowIsEmpty reports whether no cell in the given 1-based row holds a value.
// Whitespace and zero values count as values.
func RowIsEmpty(f *excelize.File, sheetName string, rowNum int) (bool, error) {
	rows, err := f.GetRows(sheetName, rawValues)
	if err != nil {
		return false, err
	}
	if rowNum < 1 || rowNum > len(rows) {
		return true, nil
	}
	for _, v := range rows[rowNum-1] {
		if v != "" {
			return false, nil
		}
	}
	return true, nil
}
