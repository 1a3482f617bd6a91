package main

import (
	"fmt"
	"os"
	"sync"

	"arkval/internal/config"
	"arkval/internal/logging"
	"arkval/internal/sdk"
	"arkval/internal/storage"
)

var (
	serviceOnce   sync.Once
	sharedService *sdk.Service
	sharedConfig  *config.Config
	sharedDB      *storage.DB
	serviceErr    error
)

// getService returns a shared index service, lazily initialized on first
// use. Storage failures degrade to running without build history rather
// than failing the command.
func getService(baseDir string, logger *logging.Logger) (*sdk.Service, *config.Config, error) {
	serviceOnce.Do(func() {
		cfg, err := config.Load(baseDir)
		if err != nil {
			logger.Warn("Failed to load config, using defaults", map[string]interface{}{
				"error": err.Error(),
			})
			cfg = config.DefaultConfig()
		}
		sharedConfig = cfg

		var recorder sdk.BuildRecorder
		if cfg.Storage.Enabled {
			db, err := storage.Open(baseDir, logger)
			if err != nil {
				logger.Warn("Failed to open build-history database", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				sharedDB = db
				recorder = db
			}
		}

		sharedService = sdk.NewService(sdk.ServiceOptions{
			SdkRoot: cfg.SdkRoot,
			VendorDirs: map[sdk.Vendor]string{
				sdk.VendorOpenHarmony: cfg.Vendors.OpenHarmony,
				sdk.VendorHms:         cfg.Vendors.Hms,
			},
			Logger:   logger,
			Recorder: recorder,
		})
	})

	return sharedService, sharedConfig, serviceErr
}

// mustGetService returns the shared service or exits on error
func mustGetService(baseDir string, logger *logging.Logger) (*sdk.Service, *config.Config) {
	service, cfg, err := getService(baseDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing service: %v\n", err)
		os.Exit(1)
	}
	return service, cfg
}

// getDB returns the shared build-history database, or nil when storage is
// disabled or unavailable. Only meaningful after getService.
func getDB() *storage.DB {
	return sharedDB
}

// getBaseDir returns the directory whose .arkval state is used
func getBaseDir() (string, error) {
	return os.Getwd()
}

// mustGetBaseDir returns the base directory or exits on error
func mustGetBaseDir() string {
	baseDir, err := getBaseDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return baseDir
}

// newLogger creates a logger with the specified format
func newLogger(format string) *logging.Logger {
	logFormat := logging.HumanFormat
	if format == "json" {
		logFormat = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: logFormat,
		Level:  logging.InfoLevel,
	})
}
