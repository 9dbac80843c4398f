// Package format applies the fixed worksheet layout: header labels, cell
// styles, row heights, auto-filter, frozen header row and column widths.
package format

import (
	"fmt"

	"github.com/ukaji3/exformat-go/pkg/exformat/parser"
	"github.com/xuri/excelize/v2"
)

// Extent of the formatted block.
const (
	LastColumn = 12
	MinRows    = 50
)

// Layout constants.
const (
	RowHeight         = 20.0
	DescriptionColumn = 4 // D, left aligned in data rows
)

// Step names reported in StepError.
const (
	StepDeleteRow = "delete_row"
	StepHeaders   = "headers"
	StepExtent    = "extent"
	StepStyles    = "styles"
	StepView      = "view"
	StepWidths    = "widths"
)

// Header is a label written into row 1.
type Header struct {
	Cell  string
	Value string
}

// Headers are written to row 1 of every sheet, replacing existing content.
var Headers = []Header{
	{Cell: "E1", Value: "Codice"},
	{Cell: "F1", Value: "Configurazione"},
	{Cell: "G1", Value: "Revisione"},
}

// StepError reports which formatting step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Sheet formats a single worksheet in place. When deleteFirstRow is set, row 1
// is removed first and every later step sees the shifted rows.
//
// Sheet is not idempotent: a second run deletes another row and rewrites the
// headers again.
func Sheet(f *excelize.File, sheetName string, deleteFirstRow bool) error {
	if deleteFirstRow {
		if err := f.RemoveRow(sheetName, 1); err != nil {
			return &StepError{Step: StepDeleteRow, Err: err}
		}
	}

	for _, h := range Headers {
		if err := f.SetCellStr(sheetName, h.Cell, h.Value); err != nil {
			return &StepError{Step: StepHeaders, Err: err}
		}
	}

	rowCount, err := parser.RowCount(f, sheetName)
	if err != nil {
		return &StepError{Step: StepExtent, Err: err}
	}
	lastRow := max(rowCount, MinRows)

	if err := applyStyles(f, sheetName, lastRow); err != nil {
		return &StepError{Step: StepStyles, Err: err}
	}
	if err := applyView(f, sheetName); err != nil {
		return &StepError{Step: StepView, Err: err}
	}
	if err := autoFitColumns(f, sheetName); err != nil {
		return &StepError{Step: StepWidths, Err: err}
	}
	return nil
}

// applyStyles sets row heights and cell styles over rows 1..lastRow and
// columns 1..LastColumn. Number formats already on the cells are kept.
func applyStyles(f *excelize.File, sheetName string, lastRow int) error {
	formats, err := numberFormats(f, sheetName, lastRow)
	if err != nil {
		return err
	}
	styles := newStyleSet(f)

	for r := 1; r <= lastRow; r++ {
		if err := f.SetRowHeight(sheetName, r, RowHeight); err != nil {
			return err
		}
	}

	// General-format styles go on by range: the header row, then one column
	// run per data column.
	lastCol, err := excelize.ColumnNumberToName(LastColumn)
	if err != nil {
		return err
	}
	header, err := styles.get(kindHeader, numFmt{})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", header); err != nil {
		return err
	}

	for col := 1; col <= LastColumn; col++ {
		top, err := excelize.CoordinatesToCellName(col, 2)
		if err != nil {
			return err
		}
		bottom, err := excelize.CoordinatesToCellName(col, lastRow)
		if err != nil {
			return err
		}
		style, err := styles.get(kindOf(2, col), numFmt{})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, top, bottom, style); err != nil {
			return err
		}
	}

	for cell, nf := range formats {
		col, row, err := excelize.CellNameToCoordinates(cell)
		if err != nil {
			return err
		}
		style, err := styles.get(kindOf(row, col), nf)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

// FilterRef is the auto-filter range: the header row across the formatted columns.
func FilterRef() string {
	lastCol, _ := excelize.ColumnNumberToName(LastColumn)
	return "A1:" + lastCol + "1"
}

// applyView sets the header auto-filter and freezes row 1.
func applyView(f *excelize.File, sheetName string) error {
	if err := f.AutoFilter(sheetName, FilterRef(), nil); err != nil {
		return err
	}
	return f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
		Selection: []excelize.Selection{
			{SQRef: "A2", ActiveCell: "A2", Pane: "bottomLeft"},
		},
	})
}
