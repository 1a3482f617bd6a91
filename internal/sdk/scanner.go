package sdk

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"arkval/internal/logging"
)

// declaration file suffixes recognized under an SDK api directory
var declarationSuffixes = []string{".d.ts", ".d.ets"}

// FileScanner enumerates declaration files under the configured SDK root.
// Each vendor's files live under {root}/{vendorDir}/ets/api.
type FileScanner struct {
	root       string
	vendorDirs map[Vendor]string
	logger     *logging.Logger
}

// NewFileScanner creates a scanner over the given SDK root
func NewFileScanner(root string, vendorDirs map[Vendor]string, logger *logging.Logger) *FileScanner {
	return &FileScanner{
		root:       root,
		vendorDirs: vendorDirs,
		logger:     logger,
	}
}

// ApiDir returns the api directory for a vendor
func (s *FileScanner) ApiDir(vendor Vendor) string {
	dir := s.vendorDirs[vendor]
	if dir == "" {
		dir = string(vendor)
	}
	return filepath.Join(s.root, dir, "ets", "api")
}

// Scan returns the declaration files for a vendor, sorted by path.
// A missing api directory is a soft condition: the scan yields zero files
// and a warning, never an error. Errors are reserved for scans that start
// but cannot complete (the build must then leave any published index
// untouched).
func (s *FileScanner) Scan(vendor Vendor) ([]string, []Warning, error) {
	apiDir := s.ApiDir(vendor)

	if _, err := os.Stat(apiDir); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("API directory not found", map[string]interface{}{
				"vendor": string(vendor),
				"dir":    apiDir,
			})
			return nil, []Warning{{
				Code:    "SDK_DIR_MISSING",
				Message: "API directory not found: " + apiDir,
			}}, nil
		}
		return nil, nil, err
	}

	var files []string
	err := filepath.WalkDir(apiDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		for _, suffix := range declarationSuffixes {
			if strings.HasSuffix(d.Name(), suffix) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Deterministic build input order, so rebuilding from the same tree
	// yields an identical index.
	sort.Strings(files)

	s.logger.Debug("Scanned declaration files", map[string]interface{}{
		"vendor": string(vendor),
		"count":  len(files),
	})

	return files, nil, nil
}

// ModuleName derives the module name from a declaration file name: the
// leading '@', the vendor path token, and the file suffix are stripped,
// leaving the remaining dotted path
// (e.g. "@ohos.multimedia.image.d.ts" -> "multimedia.image").
func ModuleName(fileName string, vendor Vendor) string {
	name := strings.TrimPrefix(filepath.Base(fileName), "@")
	for _, suffix := range declarationSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}
	name = strings.TrimPrefix(name, vendor.Token()+".")
	return name
}
