package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"arkval/internal/sdk"
	"arkval/internal/version"
)

var statusFormat string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show index state per vendor",
	Long: `Show the current per-vendor index state without triggering a build,
plus the last recorded builds when the build-history database is enabled.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(statusCmd)
}

// StatusResponseCLI contains the status output for CLI formatting
type StatusResponseCLI struct {
	Version string             `json:"version"`
	SdkRoot string             `json:"sdkRoot"`
	Vendors []sdk.VendorStatus `json:"vendors"`
	Builds  []BuildCLI         `json:"builds,omitempty"`
}

// BuildCLI is one recorded build in status output
type BuildCLI struct {
	ID           string    `json:"id"`
	Vendor       string    `json:"vendor"`
	Files        int       `json:"files"`
	Modules      int       `json:"modules"`
	Declarations int       `json:"declarations"`
	DurationMs   int64     `json:"durationMs"`
	BuiltAt      time.Time `json:"builtAt"`
}

func runStatus(cmd *cobra.Command, args []string) {
	logger := newLogger(statusFormat)

	baseDir := mustGetBaseDir()
	service, cfg := mustGetService(baseDir, logger)

	response := &StatusResponseCLI{
		Version: version.Version,
		SdkRoot: cfg.SdkRoot,
		Vendors: service.Status(),
	}

	if db := getDB(); db != nil {
		records, err := db.LatestBuilds()
		if err != nil {
			logger.Warn("Failed to read build history", map[string]interface{}{
				"error": err.Error(),
			})
		}
		for _, r := range records {
			response.Builds = append(response.Builds, BuildCLI{
				ID:           r.ID,
				Vendor:       r.Vendor,
				Files:        r.Files,
				Modules:      r.Modules,
				Declarations: r.Declarations,
				DurationMs:   r.DurationMs,
				BuiltAt:      r.BuiltAt,
			})
		}
	}

	output, err := FormatResponse(response, OutputFormat(statusFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(output)
}
