package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exformat-go/pkg/exformat"
	"github.com/ukaji3/exformat-go/pkg/exformat/output"
)

var pretty bool

func newPreviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [input.xlsx]",
		Short: "Show columns C-G of the first rows and the suggested options",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if !exformat.HasXLSXExt(inputPath) {
		return userError(fmt.Errorf("%w: %s", exformat.ErrInvalidFormat, inputPath))
	}

	preview, ok := exformat.PreviewFile(inputPath, logger)
	var suggested exformat.Options
	if ok {
		suggested = exformat.SuggestOptions(inputPath, preview)
	} else {
		suggested = exformat.SuggestOptions(inputPath, nil)
	}

	jsonData, err := output.PreviewToJSON(preview, map[string]any{
		"available": ok,
		"suggested": map[string]any{
			"base_file_name":   suggested.BaseFileName,
			"suffix":           suggested.Suffix,
			"delete_first_row": suggested.DeleteFirstRow,
			"output_name":      suggested.OutputName(),
		},
	}, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
