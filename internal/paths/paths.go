// Package paths centralizes locations of arkval's on-disk state.
// Everything arkval writes lives under a single .arkval directory so it can
// be inspected or wiped in one place.
package paths

import (
	"os"
	"path/filepath"
)

// StateDirName is the directory holding arkval state (config, db, exports)
const StateDirName = ".arkval"

// StateDir returns the state directory under the given base directory
func StateDir(baseDir string) string {
	return filepath.Join(baseDir, StateDirName)
}

// EnsureStateDir creates the state directory if it does not exist
func EnsureStateDir(baseDir string) (string, error) {
	dir := StateDir(baseDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigPath returns the path of the JSON config file
func ConfigPath(baseDir string) string {
	return filepath.Join(StateDir(baseDir), "config.json")
}

// DatabasePath returns the path of the build-history database
func DatabasePath(baseDir string) string {
	return filepath.Join(StateDir(baseDir), "arkval.db")
}

// ExportDir returns the directory for index exports
func ExportDir(baseDir string) string {
	return filepath.Join(StateDir(baseDir), "exports")
}

// EnsureExportDir creates the export directory if it does not exist
func EnsureExportDir(baseDir string) (string, error) {
	dir := ExportDir(baseDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
