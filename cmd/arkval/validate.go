package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	validateScope  string
	validateFormat string
)

var validateCmd = &cobra.Command{
	Use:   "validate <apiPath>",
	Short: "Validate an API path against the SDK index",
	Long: `Validate an API path against the SDK declaration index.

The path must start with '@ohos.' or '@hms.'. A miss is reported with
per-vendor reasons and fuzzy suggestions, not as a command failure.

Examples:
  arkval validate @ohos.multimedia.audio.AudioManager
  arkval validate @hms.core.push.PushService --scope=hms
  arkval validate @ohos.wifiManager --format=human`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateScope, "scope", "all", "Vendor scope (all, ohos, openharmony, hms)")
	validateCmd.Flags().StringVar(&validateFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	logger := newLogger(validateFormat)
	apiPath := args[0]

	baseDir := mustGetBaseDir()
	service, _ := mustGetService(baseDir, logger)

	response, err := service.Validate(apiPath, validateScope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error validating API path: %v\n", err)
		os.Exit(1)
	}

	output, err := FormatResponse(response, OutputFormat(validateFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)

	if !response.Valid {
		os.Exit(2)
	}
}
