package main

import (
	"arkval/internal/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arkval",
	Short: "arkval - HarmonyOS SDK API validator",
	Long: `arkval indexes the HarmonyOS SDK declaration files (.d.ts/.d.ets) for the
OpenHarmony and HMS vendors and answers validity, search, and module-listing
queries over them, either as a CLI or as an MCP stdio server.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("arkval version {{.Version}}\n")
}
