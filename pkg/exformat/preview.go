package exformat

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exformat-go/pkg/exformat/models"
	"github.com/ukaji3/exformat-go/pkg/exformat/parser"
	"github.com/xuri/excelize/v2"
)

// PreviewRows is the number of rows sampled by Preview.
const PreviewRows = 6

// PreviewColumns are the sampled columns, C through G.
var PreviewColumns = []int{3, 4, 5, 6, 7}

// Preview samples the first sheet of f without modifying it.
func Preview(f *excelize.File) (*models.PreviewResult, error) {
	result := &models.PreviewResult{
		Rows:          [][]string{},
		FirstRowEmpty: true,
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return result, nil
	}
	sheetName := sheets[0]

	empty, err := parser.RowIsEmpty(f, sheetName, 1)
	if err != nil {
		return nil, err
	}
	result.FirstRowEmpty = empty

	rows, err := parser.ExtractWindow(f, sheetName, PreviewRows, PreviewColumns)
	if err != nil {
		return nil, err
	}
	if rows != nil {
		result.Rows = rows
	}
	return result, nil
}

// PreviewFile loads path and previews it. Any failure is logged and reported
// with ok=false and an empty result, so callers can keep their defaults.
func PreviewFile(path string, logger *logrus.Logger) (result *models.PreviewResult, ok bool) {
	logger = orDiscard(logger)
	empty := &models.PreviewResult{Rows: [][]string{}}
	log := logger.WithField("file", filepath.Base(path))

	f, err := LoadFile(path)
	if err != nil {
		log.WithError(err).Warn("Preview unavailable")
		return empty, false
	}
	defer f.Close()

	result, err = Preview(f)
	if err != nil {
		log.WithError(err).Warn("Preview unavailable")
		return empty, false
	}
	log.WithFields(logrus.Fields{
		"rows":            len(result.Rows),
		"first_row_empty": result.FirstRowEmpty,
	}).Debug("Preview extracted")
	return result, true
}
