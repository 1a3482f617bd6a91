package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reloadFormat string

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Rescan the SDK and rebuild the indexes",
	Long: `Rescan the SDK declaration trees and rebuild both vendor indexes.

Use after the SDK on disk changes. A vendor whose scan fails keeps its
previous index and is reported with a warning.`,
	Args: cobra.NoArgs,
	Run:  runReload,
}

func init() {
	reloadCmd.Flags().StringVar(&reloadFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(reloadCmd)
}

func runReload(cmd *cobra.Command, args []string) {
	logger := newLogger(reloadFormat)

	baseDir := mustGetBaseDir()
	service, _ := mustGetService(baseDir, logger)

	stats, err := service.Reload()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reloading indexes: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(stats, OutputFormat(reloadFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
