package exformat

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input is not a .xlsx spreadsheet package.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptyFile indicates the input payload has no bytes.
var ErrEmptyFile = errors.New("empty file")

// ErrLoad indicates the package passed the format checks but could not be opened.
var ErrLoad = errors.New("could not load file")

// ErrMissingBaseName indicates the base file name is blank.
var ErrMissingBaseName = errors.New("missing base file name")

// ErrInvalidBaseName indicates the base file name would escape the output directory.
var ErrInvalidBaseName = errors.New("base file name must not contain path separators")

// ErrInvalidSuffix indicates an unknown output suffix.
var ErrInvalidSuffix = errors.New("invalid suffix")

// OptionError reports a rejected option.
type OptionError struct {
	Field string
	Value string
	Err   error
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s=%q: %v", e.Field, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error {
	return e.Err
}

// SheetError represents an error while formatting a sheet.
type SheetError struct {
	SheetName string
	Step      string // "delete_row", "headers", "extent", "styles", "view", "widths"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("format error in sheet %q (%s): %v", e.SheetName, e.Step, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, step string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Step:      step,
		Err:       err,
	}
}

// UserMessage turns an error from this package into a short message fit for
// an end user. Load failures never expose the underlying detail.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingBaseName):
		return "Enter a base name and select a file."
	case errors.Is(err, ErrInvalidBaseName):
		return "The base name must not contain path separators."
	case errors.Is(err, ErrInvalidSuffix):
		return "Unknown suffix: choose " + SuffixList() + "."
	case errors.Is(err, ErrFileNotFound):
		return "The selected file does not exist."
	case errors.Is(err, ErrEmptyFile):
		return "The file is empty."
	case errors.Is(err, ErrInvalidFormat):
		return "Unsupported format. Please select a .xlsx file."
	case errors.Is(err, ErrLoad):
		return "Could not load the .xlsx file."
	default:
		return "Processing failed."
	}
}
