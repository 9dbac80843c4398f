package exformat

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exformat-go/pkg/exformat/format"
	"github.com/xuri/excelize/v2"
)

// Transform formats every sheet of f in place, in workbook order. It does not
// validate opts; only DeleteFirstRow is used.
func Transform(f *excelize.File, opts Options) error {
	for _, sheetName := range f.GetSheetList() {
		if err := format.Sheet(f, sheetName, opts.DeleteFirstRow); err != nil {
			step := ""
			var se *format.StepError
			if errors.As(err, &se) {
				step, err = se.Step, se.Err
			}
			return NewSheetError(sheetName, step, err)
		}
	}
	return nil
}

// Write serializes f to w.
func Write(f *excelize.File, w io.Writer) error {
	return f.Write(w)
}

// SaveFile writes f to dir/name. The workbook is written to a temporary file
// in dir first and renamed into place, so a failed save leaves nothing at the
// destination.
func SaveFile(f *excelize.File, dir, name string) (string, error) {
	dest := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".exformat-*.xlsx")
	if err != nil {
		return "", fmt.Errorf("failed to create output: %w", err)
	}
	tmpName := tmp.Name()

	if err := Write(f, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	if err := os.Rename(tmpName, dest); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("failed to write output: %w", err)
	}
	return dest, nil
}

// ProcessFile runs the whole pipeline: validate options, load inputPath,
// transform it and save the result in outDir under opts.OutputName().
// It returns the path of the written file.
func ProcessFile(inputPath, outDir string, opts Options, logger *logrus.Logger) (string, error) {
	logger = orDiscard(logger)

	if err := opts.Validate(); err != nil {
		return "", err
	}

	log := logger.WithField("file", filepath.Base(inputPath))
	f, err := LoadFile(inputPath)
	if err != nil {
		log.WithError(err).Error("Failed to load workbook")
		return "", err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheets := f.GetSheetList()
	log.WithFields(logrus.Fields{
		"sheets":           len(sheets),
		"suffix":           opts.Suffix,
		"delete_first_row": opts.DeleteFirstRow,
	}).Info("Formatting workbook")

	if err := Transform(f, opts); err != nil {
		log.WithError(err).Error("Failed to format workbook")
		return "", err
	}

	dest, err := SaveFile(f, outDir, opts.OutputName())
	if err != nil {
		log.WithError(err).Error("Failed to save workbook")
		return "", err
	}
	log.WithField("output", dest).Info("Workbook written")
	return dest, nil
}

// orDiscard returns logger, or a logger that drops everything when it is nil.
func orDiscard(logger *logrus.Logger) *logrus.Logger {
	if logger != nil {
		return logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
