package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	modulesScope  string
	modulesFormat string
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List SDK modules",
	Long: `List the de-duplicated, sorted module names for the given vendor scope.

Examples:
  arkval modules
  arkval modules --scope=hms --format=human`,
	Args: cobra.NoArgs,
	Run:  runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&modulesScope, "scope", "all", "Vendor scope (all, ohos, openharmony, hms)")
	modulesCmd.Flags().StringVar(&modulesFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) {
	logger := newLogger(modulesFormat)

	baseDir := mustGetBaseDir()
	service, _ := mustGetService(baseDir, logger)

	response, err := service.ListModules(modulesScope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing modules: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(response, OutputFormat(modulesFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
