package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkval/internal/config"
	"arkval/internal/paths"
)

var initSdkRoot string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the .arkval state directory and default config",
	Long: `Create the .arkval state directory in the current directory and write a
default config.json. An existing config is left untouched.

Examples:
  arkval init
  arkval init --sdk-root=/opt/harmonyos/sdk/5.0`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initSdkRoot, "sdk-root", "", "SDK root to write into the config")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) {
	baseDir := mustGetBaseDir()

	configPath := paths.ConfigPath(baseDir)
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists at %s\n", configPath)
		return
	}

	cfg := config.DefaultConfig()
	if initSdkRoot != "" {
		cfg.SdkRoot = initSdkRoot
	}

	if err := cfg.Save(baseDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Initialized %s\n", configPath)
}
