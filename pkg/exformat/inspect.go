package exformat

import (
	"github.com/ukaji3/exformat-go/pkg/exformat/format"
	"github.com/ukaji3/exformat-go/pkg/exformat/models"
	"github.com/ukaji3/exformat-go/pkg/exformat/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads back the layout of every sheet in f.
func Inspect(f *excelize.File, bookName string) (*models.WorkbookReport, error) {
	filters := parser.ExtractFilterRanges(f)
	printAreas := parser.ExtractPrintAreas(f)

	report := &models.WorkbookReport{
		BookName: bookName,
		Sheets:   []models.SheetReport{},
	}
	for _, sheetName := range f.GetSheetList() {
		sheet, err := inspectSheet(f, sheetName)
		if err != nil {
			return nil, NewSheetError(sheetName, "inspect", err)
		}
		if r, ok := filters[sheetName]; ok {
			sheet.FilterRange = &r
		}
		sheet.PrintAreas = printAreas[sheetName]
		report.Sheets = append(report.Sheets, *sheet)
	}
	return report, nil
}

func inspectSheet(f *excelize.File, sheetName string) (*models.SheetReport, error) {
	rowCount, err := parser.RowCount(f, sheetName)
	if err != nil {
		return nil, err
	}

	sheet := &models.SheetReport{
		Name:     sheetName,
		RowCount: rowCount,
	}

	for _, h := range format.Headers {
		v, err := f.GetCellValue(sheetName, h.Cell)
		if err != nil {
			return nil, err
		}
		sheet.Headers = append(sheet.Headers, v)
	}

	if sheet.HeaderHeight, err = f.GetRowHeight(sheetName, 1); err != nil {
		return nil, err
	}

	if sheet.Pane, err = parser.ExtractPane(f, sheetName); err != nil {
		return nil, err
	}

	for col := 1; col <= format.LastColumn; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, err
		}
		w, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil, err
		}
		sheet.ColumnWidths = append(sheet.ColumnWidths, w)
	}
	return sheet, nil
}
