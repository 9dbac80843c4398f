package exformat

import (
	"path/filepath"
	"strings"

	"github.com/ukaji3/exformat-go/pkg/exformat/models"
)

// Detection holds the defaults derived from an input file name.
type Detection struct {
	BaseFileName string `json:"base_file_name"`
	Suffix       Suffix `json:"suffix"`
}

// Detect derives the default base name and suffix from an input file name.
// The base name is the name without directory and extension, cut at the
// first underscore. The suffix is STR when the name contains "_STR" in any case.
func Detect(fileName string) Detection {
	name := filepath.Base(fileName)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	base, _, _ := strings.Cut(name, "_")

	suffix := SuffixPRT
	if strings.Contains(strings.ToUpper(name), "_STR") {
		suffix = SuffixSTR
	}

	return Detection{
		BaseFileName: base,
		Suffix:       suffix,
	}
}

// SuggestOptions combines Detect with the preview of the file. A nil preview
// leaves DeleteFirstRow false.
func SuggestOptions(fileName string, preview *models.PreviewResult) Options {
	d := Detect(fileName)
	opts := Options{
		BaseFileName: d.BaseFileName,
		Suffix:       d.Suffix,
	}
	if preview != nil {
		opts.DeleteFirstRow = preview.FirstRowEmpty
	}
	return opts
}
