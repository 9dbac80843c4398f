package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exformat-go/pkg/exformat"
	"github.com/ukaji3/exformat-go/pkg/exformat/output"
)

var (
	reportPath string
	sheetsDir  string
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [file.xlsx]",
		Short: "Report the layout of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	cmd.Flags().StringVarP(&reportPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&sheetsDir, "sheets-dir", "", "Directory for per-sheet report files")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func runInspect(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	f, err := exformat.LoadFile(inputPath)
	if err != nil {
		logger.WithError(err).WithField("file", filepath.Base(inputPath)).Error("Failed to load workbook")
		return userError(err)
	}
	defer f.Close()

	report, err := exformat.Inspect(f, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if reportPath != "" {
		if err := os.WriteFile(reportPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if sheetsDir == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	}

	if sheetsDir != "" {
		if err := os.MkdirAll(sheetsDir, 0755); err != nil {
			return fmt.Errorf("failed to write sheet files: %w", err)
		}
		for i := range report.Sheets {
			sheet := &report.Sheets[i]
			data, err := output.SheetToJSON(sheet, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			if err := os.WriteFile(filepath.Join(sheetsDir, sheet.Name+".json"), data, 0644); err != nil {
				return fmt.Errorf("failed to write sheet files: %w", err)
			}
		}
	}
	return nil
}
