package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkval/internal/logging"
	"arkval/internal/mcp"
	"arkval/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP stdio server",
	Long: `Start the MCP server on stdin/stdout.

Stdout carries only the JSON-RPC stream; logs go to stderr as JSON lines
so MCP clients can surface them without corrupting the protocol.`,
	Args: cobra.NoArgs,
	Run:  runMcp,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMcp(cmd *cobra.Command, args []string) {
	baseDir := mustGetBaseDir()

	// Bootstrap logger so config loading has somewhere to complain.
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.InfoLevel,
	})

	service, cfg := mustGetService(baseDir, logger)

	logger = logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})

	server := mcp.NewServer(version.Version, service, logger)
	if err := server.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
		os.Exit(1)
	}
}
