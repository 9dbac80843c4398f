package format

import (
	"github.com/ukaji3/exformat-go/pkg/exformat/parser"
	"github.com/xuri/excelize/v2"
)

// Column width bounds, in character units.
const (
	MinTextWidth = 10
	WidthPadding = 4
	MaxWidth     = 60
)

// ColumnWidth converts the longest text length of a column to its width.
func ColumnWidth(maxLen int) float64 {
	return float64(min(max(maxLen, MinTextWidth)+WidthPadding, MaxWidth))
}

// autoFitColumns sizes columns 1..LastColumn from their current contents.
func autoFitColumns(f *excelize.File, sheetName string) error {
	lengths, err := parser.MaxTextLengths(f, sheetName, LastColumn)
	if err != nil {
		return err
	}
	for i, n := range lengths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheetName, col, col, ColumnWidth(n)); err != nil {
			return err
		}
	}
	return nil
}
