package config

import (
	"os"
	"path/filepath"
	"testing"

	"arkval/internal/paths"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SdkRoot != DefaultSdkPath {
		t.Errorf("Expected default sdk root, got %q", cfg.SdkRoot)
	}
	if cfg.Vendors.OpenHarmony != "openharmony" || cfg.Vendors.Hms != "hms" {
		t.Errorf("Unexpected default vendor dirs: %+v", cfg.Vendors)
	}
	if !cfg.Storage.Enabled {
		t.Error("Storage should default to enabled")
	}
	if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
		t.Errorf("Unexpected default logging: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := paths.EnsureStateDir(dir); err != nil {
		t.Fatal(err)
	}

	content := `{
  "version": 1,
  "sdkRoot": "/opt/sdk/custom",
  "vendors": {"openharmony": "oh", "hms": "huawei"},
  "storage": {"enabled": false},
  "logging": {"format": "json", "level": "debug"}
}`
	if err := os.WriteFile(paths.ConfigPath(dir), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SdkRoot != "/opt/sdk/custom" {
		t.Errorf("Expected configured sdk root, got %q", cfg.SdkRoot)
	}
	if cfg.Vendors.OpenHarmony != "oh" || cfg.Vendors.Hms != "huawei" {
		t.Errorf("Unexpected vendor dirs: %+v", cfg.Vendors)
	}
	if cfg.Storage.Enabled {
		t.Error("Storage should be disabled by config")
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("Unexpected logging config: %+v", cfg.Logging)
	}
}

func TestEnvOverridesSdkRoot(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(SdkPathEnv, "/env/sdk")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SdkRoot != "/env/sdk" {
		t.Errorf("Environment should override sdk root, got %q", cfg.SdkRoot)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.SdkRoot = "/opt/sdk/5.0"
	cfg.Export.Compress = false
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SdkRoot != "/opt/sdk/5.0" {
		t.Errorf("Expected saved sdk root, got %q", loaded.SdkRoot)
	}
	if loaded.Export.Compress {
		t.Error("Expected compress disabled after reload")
	}
}

func TestVendorDeclarationsOverride(t *testing.T) {
	dir := t.TempDir()

	content := `[[vendors]]
name = "hms"
dir = "hms-5.0"
notes = "pinned HMS tree"

[[vendors]]
name = "someday"
dir = "ignored"
`
	if err := os.WriteFile(filepath.Join(dir, VendorDeclarationFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Vendors.Hms != "hms-5.0" {
		t.Errorf("VENDORS.toml should override hms dir, got %q", cfg.Vendors.Hms)
	}
	if cfg.Vendors.OpenHarmony != "openharmony" {
		t.Errorf("Undeclared vendor should keep its default, got %q", cfg.Vendors.OpenHarmony)
	}
}

func TestVendorDeclarationsValidation(t *testing.T) {
	dir := t.TempDir()

	content := `[[vendors]]
name = "hms"
`
	if err := os.WriteFile(filepath.Join(dir, VendorDeclarationFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadVendorDeclarations(dir); err == nil {
		t.Error("Expected error for vendor entry without dir")
	}
}

func TestVendorDeclarationsAbsent(t *testing.T) {
	decls, err := LoadVendorDeclarations(t.TempDir())
	if err != nil {
		t.Fatalf("Expected nil error for absent file, got %v", err)
	}
	if decls != nil {
		t.Errorf("Expected nil declarations for absent file, got %+v", decls)
	}
}
