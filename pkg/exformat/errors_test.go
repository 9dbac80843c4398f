package exformat

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{nil, ""},
		{&OptionError{Field: "base_file_name", Err: ErrMissingBaseName}, "Enter a base name and select a file."},
		{ErrEmptyFile, "The file is empty."},
		{&OptionError{Field: "suffix", Value: "X", Err: ErrInvalidSuffix}, "Unknown suffix: choose PRT_COMPILATO or STR_COMPILATO."},
		{fmt.Errorf("%w: zip: not a valid zip file", ErrInvalidFormat), "Unsupported format. Please select a .xlsx file."},
		{fmt.Errorf("%w: xml syntax error on line 3", ErrLoad), "Could not load the .xlsx file."},
		{fmt.Errorf("%w: /tmp/x.xlsx", ErrFileNotFound), "The selected file does not exist."},
		{errors.New("disk full"), "Processing failed."},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, UserMessage(tt.err))
	}
}

func TestSheetErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := fmt.Errorf("transform: %w", NewSheetError("Dati", "widths", inner))

	var se *SheetError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, "Dati", se.SheetName)
	assert.ErrorIs(t, err, inner)
	assert.EqualError(t, se, `format error in sheet "Dati" (widths): inner`)
}
