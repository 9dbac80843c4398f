package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exformat-go/pkg/exformat"
)

var (
	baseName       string
	suffix         string
	deleteFirstRow bool
	outputDir      string
)

func newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process [input.xlsx]",
		Short: "Format a workbook and save it as <base>_<suffix>.xlsx",
		Args:  cobra.ExactArgs(1),
		RunE:  runProcess,
	}

	cmd.Flags().StringVarP(&baseName, "base", "b", "", "Base file name (default: input name up to the first underscore)")
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "Output suffix: "+exformat.SuffixList()+", or the short PRT/STR (default: STR if the input name contains _STR)")
	cmd.Flags().BoolVar(&deleteFirstRow, "delete-first-row", false, "Delete row 1 before formatting (default: true when row 1 is empty)")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "Directory for the output file")

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if !exformat.HasXLSXExt(inputPath) {
		return userError(fmt.Errorf("%w: %s", exformat.ErrInvalidFormat, inputPath))
	}

	opts, err := resolveOptions(cmd, inputPath)
	if err != nil {
		return userError(err)
	}

	dest, err := exformat.ProcessFile(inputPath, outputDir, opts, logger)
	if err != nil {
		return userError(err)
	}

	size := ""
	if info, err := os.Stat(dest); err == nil {
		size = " (" + humanize.Bytes(uint64(info.Size())) + ")"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "File %q saved%s\n", dest, size)
	return nil
}

// resolveOptions fills options not given on the command line from the input
// name and, for the row deletion toggle, from a preview of the file. Naming
// options are validated before the file is read.
func resolveOptions(cmd *cobra.Command, inputPath string) (exformat.Options, error) {
	opts := exformat.SuggestOptions(inputPath, nil)

	if cmd.Flags().Changed("base") {
		opts.BaseFileName = baseName
	}
	if cmd.Flags().Changed("suffix") {
		s, err := exformat.ParseSuffix(suffix)
		if err != nil {
			return opts, err
		}
		opts.Suffix = s
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	if cmd.Flags().Changed("delete-first-row") {
		opts.DeleteFirstRow = deleteFirstRow
	} else if preview, ok := exformat.PreviewFile(inputPath, logger); ok {
		opts.DeleteFirstRow = preview.FirstRowEmpty
	}

	logger.WithFields(logrus.Fields{
		"base":             opts.BaseFileName,
		"suffix":           opts.Suffix,
		"delete_first_row": opts.DeleteFirstRow,
	}).Debug("Resolved options")
	return opts, nil
}

// userError replaces err with its user-facing message. The detail has already
// been logged where it happened, or is logged here at debug level.
func userError(err error) error {
	var optErr *exformat.OptionError
	if !errors.As(err, &optErr) {
		logger.WithError(err).Debug("Processing failed")
	}
	return errors.New(exformat.UserMessage(err))
}
