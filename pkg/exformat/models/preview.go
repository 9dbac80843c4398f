// Package models defines data structures for workbook formatting results.
package models

// PreviewResult is a bounded, read-only sample of the first worksheet.
type PreviewResult struct {
	// Rows holds up to six rows of display strings for columns C through G.
	Rows [][]string `json:"rows"`
	// FirstRowEmpty reports whether row 1 holds no value in any cell.
	FirstRowEmpty bool `json:"first_row_empty"`
}
