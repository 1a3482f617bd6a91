package sdk

import (
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"arkval/internal/logging"
)

// Warning is a non-fatal condition recorded during a build
// (missing vendor directory, skipped file).
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Index is the frozen, queryable declaration index of one vendor.
// Once built it is never mutated; rebuilds produce a new Index and the
// owning service swaps the published reference.
type Index struct {
	vendor      Vendor
	modules     map[string][]Declaration // module entry first, then discovery order
	moduleNames []string                 // sorted
	flat        []Declaration            // all declarations across modules
	warnings    []Warning

	buildID   string
	builtAt   time.Time
	fileCount int
}

// Vendor returns the vendor this index covers
func (ix *Index) Vendor() Vendor { return ix.vendor }

// BuildID returns the unique id assigned to this build
func (ix *Index) BuildID() string { return ix.buildID }

// BuiltAt returns when the build completed
func (ix *Index) BuiltAt() time.Time { return ix.builtAt }

// FileCount returns how many declaration files contributed
func (ix *Index) FileCount() int { return ix.fileCount }

// Warnings returns the non-fatal conditions recorded during the build
func (ix *Index) Warnings() []Warning { return ix.warnings }

// ModuleCount returns the number of indexed modules
func (ix *Index) ModuleCount() int { return len(ix.moduleNames) }

// DeclarationCount returns the number of indexed declarations,
// module entries included
func (ix *Index) DeclarationCount() int { return len(ix.flat) }

// Modules returns the sorted module names
func (ix *Index) Modules() []string { return ix.moduleNames }

// Module returns a module's declarations (module entry first) and whether
// the module exists
func (ix *Index) Module(name string) ([]Declaration, bool) {
	decls, ok := ix.modules[name]
	return decls, ok
}

// Flat returns every declaration across all modules, used by search and
// fuzzy scans
func (ix *Index) Flat() []Declaration { return ix.flat }

// IndexBuilder turns a vendor's declaration tree into an Index.
// Building is deterministic: the same files always produce an index equal
// in content.
type IndexBuilder struct {
	scanner *FileScanner
	parser  *DeclarationParser
	logger  *logging.Logger
}

// NewIndexBuilder creates a builder over the given scanner
func NewIndexBuilder(scanner *FileScanner, logger *logging.Logger) *IndexBuilder {
	return &IndexBuilder{
		scanner: scanner,
		parser:  NewDeclarationParser(),
		logger:  logger,
	}
}

// Build scans and parses a vendor's declaration files and freezes the
// result. Files that fail to parse are skipped with a warning; only a scan
// that cannot complete at all returns an error.
func (b *IndexBuilder) Build(vendor Vendor) (*Index, error) {
	start := time.Now()

	files, warnings, err := b.scanner.Scan(vendor)
	if err != nil {
		return nil, err
	}

	ix := &Index{
		vendor:    vendor,
		modules:   make(map[string][]Declaration),
		warnings:  warnings,
		buildID:   uuid.NewString(),
		fileCount: len(files),
	}

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			// Isolated to this one module, like a parse failure.
			b.logger.Warn("Skipping unreadable declaration file", map[string]interface{}{
				"file":  file,
				"error": err.Error(),
			})
			ix.warnings = append(ix.warnings, Warning{Code: "PARSE_SKIP", Message: file + ": " + err.Error()})
			continue
		}

		moduleName := ModuleName(file, vendor)
		decls, err := b.parser.Parse(moduleName, file, string(content))
		if err != nil {
			b.logger.Warn("Skipping unparseable declaration file", map[string]interface{}{
				"file":  file,
				"error": err.Error(),
			})
			ix.warnings = append(ix.warnings, Warning{Code: "PARSE_SKIP", Message: err.Error()})
			continue
		}

		ix.modules[moduleName] = append(ix.modules[moduleName], decls...)
	}

	ix.moduleNames = make([]string, 0, len(ix.modules))
	for name := range ix.modules {
		ix.moduleNames = append(ix.moduleNames, name)
	}
	sort.Strings(ix.moduleNames)

	for _, name := range ix.moduleNames {
		ix.flat = append(ix.flat, ix.modules[name]...)
	}

	ix.builtAt = time.Now()

	b.logger.Info("Built declaration index", map[string]interface{}{
		"vendor":       string(vendor),
		"files":        len(files),
		"modules":      ix.ModuleCount(),
		"declarations": ix.DeclarationCount(),
		"durationMs":   time.Since(start).Milliseconds(),
	})

	return ix, nil
}
