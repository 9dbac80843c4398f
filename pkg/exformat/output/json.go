// Package output serializes results to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exformat-go/pkg/exformat/models"
)

// ToJSON serializes a workbook report.
func ToJSON(wb *models.WorkbookReport, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet report.
func SheetToJSON(sheet *models.SheetReport, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// PreviewToJSON serializes a preview together with any extra top-level fields
// the caller wants alongside it (such as suggested options).
func PreviewToJSON(preview *models.PreviewResult, extra map[string]any, pretty bool) ([]byte, error) {
	doc := map[string]any{
		"rows":            preview.Rows,
		"first_row_empty": preview.FirstRowEmpty,
	}
	for k, v := range extra {
		doc[k] = v
	}
	return marshal(doc, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
