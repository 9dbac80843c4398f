package parser

import (
	"github.com/ukaji3/exformat-go/pkg/exformat/models"
	"github.com/xuri/excelize/v2"
)

// ExtractPane reads the pane settings of a sheet's first view.
// Returns nil if the sheet has no split or freeze.
func ExtractPane(f *excelize.File, sheetName string) (*models.Pane, error) {
	panes, err := f.GetPanes(sheetName)
	if err != nil {
		return nil, err
	}
	if !panes.Freeze && !panes.Split && panes.XSplit == 0 && panes.YSplit == 0 {
		return nil, nil
	}

	pane := &models.Pane{
		Frozen:      panes.Freeze,
		XSplit:      panes.XSplit,
		YSplit:      panes.YSplit,
		TopLeftCell: panes.TopLeftCell,
	}
	for _, sel := range panes.Selection {
		if sel.ActiveCell != "" {
			pane.ActiveCell = sel.ActiveCell
			break
		}
	}
	return pane, nil
}
