package exformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/exformat-go/pkg/exformat/models"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		fileName string
		base     string
		suffix   Suffix
	}{
		{"BA006220_STR.xlsx", "BA006220", SuffixSTR},
		{"BA006220.xlsx", "BA006220", SuffixPRT},
		{"BA006220_str.XLSX", "BA006220", SuffixSTR},
		{"BA006220_PRT_rev2.xlsx", "BA006220", SuffixPRT},
		{"/tmp/in/BA006220_STRUTTURA.xlsx", "BA006220", SuffixSTR},
		{"STR.xlsx", "STR", SuffixPRT},
		{"report.v2.xlsx", "report.v2", SuffixPRT},
		{"_STR.xlsx", "", SuffixSTR},
	}

	for _, tt := range tests {
		d := Detect(tt.fileName)
		assert.Equal(t, tt.base, d.BaseFileName, tt.fileName)
		assert.Equal(t, tt.suffix, d.Suffix, tt.fileName)
	}
}

func TestSuggestOptions(t *testing.T) {
	opts := SuggestOptions("BA006220_STR.xlsx", &models.PreviewResult{FirstRowEmpty: true})
	assert.Equal(t, Options{BaseFileName: "BA006220", Suffix: SuffixSTR, DeleteFirstRow: true}, opts)
	assert.Equal(t, "BA006220_STR_COMPILATO.xlsx", opts.OutputName())

	opts = SuggestOptions("BA006220.xlsx", &models.PreviewResult{FirstRowEmpty: false})
	assert.Equal(t, Options{BaseFileName: "BA006220", Suffix: SuffixPRT}, opts)
	assert.Equal(t, "BA006220_PRT_COMPILATO.xlsx", opts.OutputName())

	opts = SuggestOptions("BA006220.xlsx", nil)
	assert.False(t, opts.DeleteFirstRow)
}
