package models

// Pane describes the frozen-pane state of a worksheet view.
type Pane struct {
	// Frozen is true when the split is a freeze rather than a movable split.
	Frozen bool `json:"frozen"`
	// XSplit is the number of frozen columns.
	XSplit int `json:"x_split"`
	// YSplit is the number of frozen rows.
	YSplit int `json:"y_split"`
	// TopLeftCell is the first visible cell of the scrolling pane.
	TopLeftCell string `json:"top_left_cell,omitempty"`
	// ActiveCell is the selected cell, if recorded.
	ActiveCell string `json:"active_cell,omitempty"`
}

// SheetReport describes the layout of a single sheet as read back from a workbook.
type SheetReport struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// RowCount is the last row number present in the sheet.
	RowCount int `json:"row_count"`
	// Headers holds the row 1 values of columns E, F and G.
	Headers []string `json:"headers"`
	// HeaderHeight is the height of row 1.
	HeaderHeight float64 `json:"header_height"`
	// FilterRange is the auto-filter range (nil if the sheet has none).
	FilterRange *CellRange `json:"filter_range,omitempty"`
	// Pane is the frozen-pane state (nil if the sheet has no panes).
	Pane *Pane `json:"pane,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []CellRange `json:"print_areas,omitempty"`
	// ColumnWidths holds the widths of the formatted columns, A first.
	ColumnWidths []float64 `json:"column_widths"`
}
