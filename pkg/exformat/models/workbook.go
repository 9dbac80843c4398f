package models

// WorkbookReport represents a workbook-level container with per-sheet reports.
type WorkbookReport struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds one report per sheet, in workbook order.
	Sheets []SheetReport `json:"sheets"`
}
