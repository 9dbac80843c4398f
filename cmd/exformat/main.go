// Package main provides the CLI entry point for exformat.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logrus.New()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "exformat",
		Short: "Format Excel workbooks into the compiled layout",
		Long: `exformat applies the compiled layout (headers, fonts, borders, frozen
header row, auto-filter and column widths) to every sheet of an .xlsx file
and saves it as <base>_<suffix>.xlsx.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newProcessCmd(), newPreviewCmd(), newInspectCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
}
