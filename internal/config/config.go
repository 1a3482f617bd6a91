// Package config loads arkval configuration from .arkval/config.json with
// sane defaults, plus optional vendor directory declarations from
// VENDORS.toml.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"arkval/internal/paths"
)

// SdkPathEnv is the environment variable overriding the configured SDK root
const SdkPathEnv = "HARMONYOS_SDK_PATH"

// DefaultSdkPath is used when neither config nor environment supplies a root
const DefaultSdkPath = "/opt/harmonyos/sdk/default"

// Config represents the complete arkval configuration
type Config struct {
	Version int    `json:"version" mapstructure:"version"`
	SdkRoot string `json:"sdkRoot" mapstructure:"sdkRoot"`

	Vendors VendorsConfig `json:"vendors" mapstructure:"vendors"`
	Storage StorageConfig `json:"storage" mapstructure:"storage"`
	Export  ExportConfig  `json:"export" mapstructure:"export"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// VendorsConfig maps each SDK vendor to its subdirectory under the SDK root
type VendorsConfig struct {
	OpenHarmony string `json:"openharmony" mapstructure:"openharmony"`
	Hms         string `json:"hms" mapstructure:"hms"`
}

// StorageConfig controls the build-history database
type StorageConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// ExportConfig controls index exports
type ExportConfig struct {
	Compress bool `json:"compress" mapstructure:"compress"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		SdkRoot: DefaultSdkPath,
		Vendors: VendorsConfig{
			OpenHarmony: "openharmony",
			Hms:         "hms",
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Export: ExportConfig{
			Compress: true,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Load reads configuration from .arkval/config.json under baseDir.
// A missing config file yields the defaults. The HARMONYOS_SDK_PATH
// environment variable always wins over the configured sdkRoot, matching
// how the SDK location is usually supplied in CI.
func Load(baseDir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("sdkRoot", DefaultSdkPath)
	v.SetDefault("vendors.openharmony", "openharmony")
	v.SetDefault("vendors.hms", "hms")
	v.SetDefault("storage.enabled", true)
	v.SetDefault("export.compress", true)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(paths.StateDir(baseDir))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if env := os.Getenv(SdkPathEnv); env != "" {
		cfg.SdkRoot = env
	}

	// VENDORS.toml, when present, overrides the vendor directory mapping.
	decls, err := LoadVendorDeclarations(baseDir)
	if err != nil {
		return nil, err
	}
	if decls != nil {
		decls.Apply(&cfg.Vendors)
	}

	return &cfg, nil
}

// Save writes the configuration to .arkval/config.json
func (c *Config) Save(baseDir string) error {
	if _, err := paths.EnsureStateDir(baseDir); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(paths.StateDir(baseDir), "config.json"), data, 0644)
}
