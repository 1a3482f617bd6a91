package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	searchScope  string
	searchLimit  int
	searchFormat string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search SDK declarations",
	Long: `Search SDK declarations by substring.

The query is matched case-insensitively against every declaration's
module name and qualified name. Results are ordered by vendor, module,
kind, and display name.

Examples:
  arkval search audio
  arkval search AudioManager --scope=ohos
  arkval search push --limit=10 --format=human`,
	Args: cobra.ExactArgs(1),
	Run:  runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchScope, "scope", "all", "Vendor scope (all, ohos, openharmony, hms)")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "Maximum number of results (1-100)")
	searchCmd.Flags().StringVar(&searchFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	logger := newLogger(searchFormat)
	query := args[0]

	baseDir := mustGetBaseDir()
	service, _ := mustGetService(baseDir, logger)

	response, err := service.Search(query, searchScope, searchLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error searching declarations: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(response, OutputFormat(searchFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
