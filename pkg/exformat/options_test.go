package exformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected Suffix
		wantErr  bool
	}{
		{"PRT", SuffixPRT, false},
		{"str", SuffixSTR, false},
		{"PRT_COMPILATO", SuffixPRT, false},
		{" str_compilato ", SuffixSTR, false},
		{"XYZ", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		s, err := ParseSuffix(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidSuffix, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, s, tt.input)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"valid", Options{BaseFileName: "BA006220", Suffix: SuffixPRT}, nil},
		{"blank base", Options{BaseFileName: "  ", Suffix: SuffixPRT}, ErrMissingBaseName},
		{"empty base", Options{Suffix: SuffixSTR}, ErrMissingBaseName},
		{"path in base", Options{BaseFileName: "../x", Suffix: SuffixPRT}, ErrInvalidBaseName},
		{"unknown suffix", Options{BaseFileName: "x", Suffix: "OTHER"}, ErrInvalidSuffix},
		{"missing suffix", Options{BaseFileName: "x"}, ErrInvalidSuffix},
	}

	for _, tt := range tests {
		err := tt.opts.Validate()
		if tt.expected == nil {
			assert.NoError(t, err, tt.name)
			continue
		}
		assert.ErrorIs(t, err, tt.expected, tt.name)
		var optErr *OptionError
		assert.ErrorAs(t, err, &optErr, tt.name)
	}
}

func TestOutputName(t *testing.T) {
	for _, s := range Suffixes() {
		opts := Options{BaseFileName: "BA006220", Suffix: s}
		assert.Equal(t, "BA006220_"+string(s)+".xlsx", opts.OutputName())
	}
	assert.Equal(t, "PRT_COMPILATO or STR_COMPILATO", SuffixList())
	assert.Equal(t, "a b_STR_COMPILATO.xlsx", Options{BaseFileName: "a b", Suffix: SuffixSTR}.OutputName())
}
