package config

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// VendorDeclarationFile is the default filename for vendor declarations
const VendorDeclarationFile = "VENDORS.toml"

// VendorDeclaration describes one SDK vendor tree in VENDORS.toml
type VendorDeclaration struct {
	// Name is the vendor identifier ("openharmony" or "hms")
	Name string `toml:"name"`

	// Dir is the subdirectory of the SDK root holding this vendor's tree
	Dir string `toml:"dir"`

	// Notes is free-form documentation for the entry
	Notes string `toml:"notes,omitempty"`
}

// VendorDeclarations is the root structure of VENDORS.toml
type VendorDeclarations struct {
	Vendors []VendorDeclaration `toml:"vendors"`
}

// LoadVendorDeclarations reads VENDORS.toml from baseDir.
// Returns (nil, nil) when the file does not exist.
func LoadVendorDeclarations(baseDir string) (*VendorDeclarations, error) {
	path := filepath.Join(baseDir, VendorDeclarationFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", VendorDeclarationFile, err)
	}

	var decls VendorDeclarations
	if err := toml.Unmarshal(data, &decls); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", VendorDeclarationFile, err)
	}

	for i, d := range decls.Vendors {
		if d.Name == "" {
			return nil, fmt.Errorf("%s: vendor entry %d has no name", VendorDeclarationFile, i)
		}
		if d.Dir == "" {
			return nil, fmt.Errorf("%s: vendor %q has no dir", VendorDeclarationFile, d.Name)
		}
	}

	return &decls, nil
}

// Apply overrides the vendor directory mapping with declared entries.
// Unknown vendor names are ignored rather than rejected so a declarations
// file can be shared across tool versions.
func (d *VendorDeclarations) Apply(vendors *VendorsConfig) {
	for _, decl := range d.Vendors {
		switch decl.Name {
		case "openharmony":
			vendors.OpenHarmony = decl.Dir
		case "hms":
			vendors.Hms = decl.Dir
		}
	}
}
