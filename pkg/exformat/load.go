package exformat

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/exformat-go/pkg/exformat/parser"
	"github.com/xuri/excelize/v2"
)

// HasXLSXExt reports whether path ends in .xlsx, in any case.
func HasXLSXExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), OutputExt)
}

// LoadFile opens a workbook from disk. The extension is checked before the
// file is read.
func LoadFile(path string) (*excelize.File, error) {
	if !HasXLSXExt(path) {
		return nil, fmt.Errorf("%w: %s is not a %s file", ErrInvalidFormat, filepath.Base(path), OutputExt)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return LoadBytes(data)
}

// Load reads a workbook payload from r.
func Load(r io.Reader) (*excelize.File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return LoadBytes(data)
}

// LoadBytes opens a workbook payload. Empty payloads and payloads that are
// not spreadsheet packages are rejected before excelize parses them.
func LoadBytes(data []byte) (*excelize.File, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if _, err := parser.CheckPackage(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return f, nil
}
