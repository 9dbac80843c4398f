package parser

import (
	"strings"

	"github.com/ukaji3/exformat-go/pkg/exformat/models"
	"github.com/xuri/excelize/v2"
)

// Built-in defined names that carry per-sheet ranges.
const (
	PrintAreaName = "_xlnm.Print_Area"
	FilterName    = "_xlnm._FilterDatabase"
)

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.CellRange {
	return ExtractDefinedRanges(f, PrintAreaName)
}

// ExtractFilterRanges returns the auto-filter range of every sheet that has one.
func ExtractFilterRanges(f *excelize.File) map[string]models.CellRange {
	result := make(map[string]models.CellRange)
	for sheetName, ranges := range ExtractDefinedRanges(f, FilterName) {
		result[sheetName] = ranges[0]
	}
	return result
}

// ExtractDefinedRanges collects the ranges of every defined name called name,
// keyed by the sheet the reference points at.
func ExtractDefinedRanges(f *excelize.File, name string) map[string][]models.CellRange {
	result := make(map[string][]models.CellRange)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, name) {
			continue
		}
		sheetName, ranges := parseRangeReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(ranges) > 0 {
			result[sheetName] = append(result[sheetName], ranges...)
		}
	}

	return result
}

// parseRangeReference parses a defined-name reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parseRangeReference(ref string) (string, []models.CellRange) {
	var ranges []models.CellRange

	var sheetName string
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		sheet := strings.Trim(part[:idx], "'")
		if sheetName == "" {
			sheetName = sheet
		}
		if r := parseRange(part[idx+1:]); r != nil {
			ranges = append(ranges, *r)
		}
	}

	return sheetName, ranges
}

// parseRange parses a range string like $A$1:$D$10. A single cell yields a
// one-cell range.
func parseRange(rangeStr string) *models.CellRange {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return nil
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}
}
