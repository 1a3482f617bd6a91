package sdk

import (
	"sync"
	"sync/atomic"
	"time"

	"arkval/internal/logging"
)

// BuildRecord summarizes one completed vendor build for persistence
type BuildRecord struct {
	ID           string
	Vendor       string
	Files        int
	Modules      int
	Declarations int
	DurationMs   int64
	BuiltAt      time.Time
}

// BuildRecorder persists build records. The service treats recording as
// best-effort observability: a recorder failure never fails a build.
type BuildRecorder interface {
	RecordBuild(record BuildRecord) error
}

// ServiceOptions configures a Service
type ServiceOptions struct {
	SdkRoot    string
	VendorDirs map[Vendor]string
	Logger     *logging.Logger
	Recorder   BuildRecorder // optional
}

// Service owns the per-vendor indexes and their lifecycle. Each vendor's
// index is built lazily on first use and swapped atomically on reload, so
// queries always see either the old complete index or the new complete
// index, never a partial one.
type Service struct {
	builder  *IndexBuilder
	logger   *logging.Logger
	recorder BuildRecorder
	slots    map[Vendor]*vendorSlot
}

// vendorSlot holds one vendor's published index. The mutex serializes
// builders: concurrent cold callers line up on it and all but the first
// find the freshly published index when they acquire it.
type vendorSlot struct {
	mu        sync.Mutex
	published atomic.Pointer[Index]
	stale     atomic.Bool
}

// NewService creates a service over the given SDK root
func NewService(opts ServiceOptions) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}

	scanner := NewFileScanner(opts.SdkRoot, opts.VendorDirs, logger)

	slots := make(map[Vendor]*vendorSlot, len(AllVendors))
	for _, v := range AllVendors {
		slots[v] = &vendorSlot{}
	}

	return &Service{
		builder:  NewIndexBuilder(scanner, logger),
		logger:   logger,
		recorder: opts.Recorder,
		slots:    slots,
	}
}

// index returns the vendor's published index, building it first if it is
// missing or has been invalidated. A failed rebuild leaves the previously
// published index in place.
func (s *Service) index(vendor Vendor) (*Index, error) {
	slot := s.slots[vendor]

	if ix := slot.published.Load(); ix != nil && !slot.stale.Load() {
		return ix, nil
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	// Another caller may have finished the build while we waited.
	if ix := slot.published.Load(); ix != nil && !slot.stale.Load() {
		return ix, nil
	}

	start := time.Now()
	ix, err := s.builder.Build(vendor)
	if err != nil {
		if prev := slot.published.Load(); prev != nil {
			s.logger.Error("Rebuild failed, keeping previous index", map[string]interface{}{
				"vendor": string(vendor),
				"error":  err.Error(),
			})
			return prev, nil
		}
		return nil, err
	}

	slot.published.Store(ix)
	slot.stale.Store(false)

	if s.recorder != nil {
		record := BuildRecord{
			ID:           ix.BuildID(),
			Vendor:       string(vendor),
			Files:        ix.FileCount(),
			Modules:      ix.ModuleCount(),
			Declarations: ix.DeclarationCount(),
			DurationMs:   time.Since(start).Milliseconds(),
			BuiltAt:      ix.BuiltAt(),
		}
		if err := s.recorder.RecordBuild(record); err != nil {
			s.logger.Warn("Failed to record build", map[string]interface{}{
				"vendor": string(vendor),
				"error":  err.Error(),
			})
		}
	}

	return ix, nil
}

// IndexFor returns the vendor's current index, building it if needed.
// Exports and other consumers that need the whole index go through here.
func (s *Service) IndexFor(vendor Vendor) (*Index, error) {
	return s.index(vendor)
}

// indexes returns the published indexes for the given vendors, building
// lazily as needed
func (s *Service) indexes(vendors []Vendor) (map[Vendor]*Index, error) {
	out := make(map[Vendor]*Index, len(vendors))
	for _, v := range vendors {
		ix, err := s.index(v)
		if err != nil {
			return nil, err
		}
		out[v] = ix
	}
	return out, nil
}

// Invalidate marks every vendor's index stale so the next query rebuilds
func (s *Service) Invalidate() {
	for _, slot := range s.slots {
		slot.stale.Store(true)
	}
}

// VendorReload reports one vendor's share of a reload
type VendorReload struct {
	Vendor       Vendor    `json:"vendor"`
	Modules      int       `json:"modules"`
	Declarations int       `json:"declarations"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// ReloadStats reports the outcome of a reload
type ReloadStats struct {
	ModulesLoaded      int            `json:"modulesLoaded"`
	DeclarationsLoaded int            `json:"declarationsLoaded"`
	Vendors            []VendorReload `json:"vendors"`
}

// Reload invalidates and eagerly rebuilds both vendors. Each new index is
// built off to the side and swapped in only when complete; a vendor whose
// scan fails outright keeps its previous index and contributes nothing to
// the totals.
func (s *Service) Reload() (*ReloadStats, error) {
	s.Invalidate()

	stats := &ReloadStats{}
	for _, vendor := range AllVendors {
		ix, err := s.index(vendor)
		if err != nil {
			s.logger.Error("Reload failed for vendor", map[string]interface{}{
				"vendor": string(vendor),
				"error":  err.Error(),
			})
			stats.Vendors = append(stats.Vendors, VendorReload{
				Vendor:   vendor,
				Warnings: []Warning{{Code: "SCAN_ERROR", Message: err.Error()}},
			})
			continue
		}
		stats.ModulesLoaded += ix.ModuleCount()
		stats.DeclarationsLoaded += ix.DeclarationCount()
		stats.Vendors = append(stats.Vendors, VendorReload{
			Vendor:       vendor,
			Modules:      ix.ModuleCount(),
			Declarations: ix.DeclarationCount(),
			Warnings:     ix.Warnings(),
		})
	}

	return stats, nil
}

// VendorStatus reports one vendor's index state
type VendorStatus struct {
	Vendor       Vendor    `json:"vendor"`
	Built        bool      `json:"built"`
	Stale        bool      `json:"stale"`
	BuildID      string    `json:"buildId,omitempty"`
	BuiltAt      time.Time `json:"builtAt,omitzero"`
	Files        int       `json:"files"`
	Modules      int       `json:"modules"`
	Declarations int       `json:"declarations"`
	Warnings     []Warning `json:"warnings,omitempty"`
}

// Status reports the current index state per vendor without triggering
// any builds
func (s *Service) Status() []VendorStatus {
	statuses := make([]VendorStatus, 0, len(AllVendors))
	for _, vendor := range AllVendors {
		slot := s.slots[vendor]
		status := VendorStatus{
			Vendor: vendor,
			Stale:  slot.stale.Load(),
		}
		if ix := slot.published.Load(); ix != nil {
			status.Built = true
			status.BuildID = ix.BuildID()
			status.BuiltAt = ix.BuiltAt()
			status.Files = ix.FileCount()
			status.Modules = ix.ModuleCount()
			status.Declarations = ix.DeclarationCount()
			status.Warnings = ix.Warnings()
		}
		statuses = append(statuses, status)
	}
	return statuses
}
