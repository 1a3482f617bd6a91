package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkval/internal/export"
	"arkval/internal/paths"
	"arkval/internal/sdk"
)

var (
	exportScope      string
	exportDir        string
	exportNoCompress bool
	exportFormat     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export index snapshots to disk",
	Long: `Export each in-scope vendor's index as a JSON snapshot with a blake2b
checksum sidecar. Snapshots are zstd-compressed unless --no-compress is set.

Examples:
  arkval export
  arkval export --scope=ohos --dir=/tmp/snapshots
  arkval export --no-compress --format=human`,
	Args: cobra.NoArgs,
	Run:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportScope, "scope", "all", "Vendor scope (all, ohos, openharmony, hms)")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Target directory (default: .arkval/exports)")
	exportCmd.Flags().BoolVar(&exportNoCompress, "no-compress", false, "Write plain JSON instead of zstd")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	logger := newLogger(exportFormat)

	baseDir := mustGetBaseDir()
	service, cfg := mustGetService(baseDir, logger)

	vendors, err := sdk.ParseScope(exportScope)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := exportDir
	if dir == "" {
		dir, err = paths.EnsureExportDir(baseDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating export directory: %v\n", err)
			os.Exit(1)
		}
	}

	compress := cfg.Export.Compress && !exportNoCompress
	exporter := export.NewExporter(compress, logger)

	for _, vendor := range vendors {
		ix, err := service.IndexFor(vendor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building %s index: %v\n", vendor, err)
			os.Exit(1)
		}

		manifest, err := exporter.Export(ix, dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s index: %v\n", vendor, err)
			os.Exit(1)
		}

		output, err := FormatResponse(manifest, OutputFormat(exportFormat))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(output)
	}
}
