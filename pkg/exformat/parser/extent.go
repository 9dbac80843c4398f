package parser

import (
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// RowCount returns the last row number present in a sheet. Rows that exist
// only to carry a style or height are counted, as are gaps before them.
func RowCount(f *excelize.File, sheetName string) (int, error) {
	rows, err := f.Rows(sheetName)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		count++
	}
	if err := rows.Error(); err != nil {
		return 0, err
	}
	return count, nil
}

// MaxTextLengths returns, for each of the first cols columns, the length in
// characters of the longest non-empty value found in that column.
// Columns with no values report 0.
func MaxTextLengths(f *excelize.File, sheetName string, cols int) ([]int, error) {
	rows, err := f.GetRows(sheetName, rawValues)
	if err != nil {
		return nil, err
	}

	lengths := make([]int, cols)
	for rowIdx, row := range rows {
		for colIdx := 0; colIdx < cols && colIdx < len(row); colIdx++ {
			if row[colIdx] == "" {
				continue
			}
			value, err := displayValue(f, sheetName, colIdx+1, rowIdx+1, row[colIdx])
			if err != nil {
				return nil, err
			}
			if n := TextLength(value); n > lengths[colIdx] {
				lengths[colIdx] = n
			}
		}
	}
	return lengths, nil
}

// TextLength counts characters, not bytes.
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}
