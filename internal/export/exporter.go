// Package export dumps a vendor's declaration index to a JSON snapshot
// file, optionally zstd-compressed, with a blake2b checksum sidecar so
// consumers can verify a snapshot before trusting it.
package export

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/crypto/blake2b"

	"arkval/internal/logging"
	"arkval/internal/sdk"
)

// Snapshot is the exported form of one vendor's index
type Snapshot struct {
	Vendor       sdk.Vendor        `json:"vendor"`
	BuildID      string            `json:"buildId"`
	BuiltAt      time.Time         `json:"builtAt"`
	Modules      []string          `json:"modules"`
	Declarations []sdk.Declaration `json:"declarations"`
}

// Manifest describes one written export
type Manifest struct {
	Vendor       sdk.Vendor `json:"vendor"`
	Path         string     `json:"path"`
	Compressed   bool       `json:"compressed"`
	Checksum     string     `json:"checksum"` // blake2b-256 of the uncompressed JSON
	SizeBytes    int        `json:"sizeBytes"`
	Modules      int        `json:"modules"`
	Declarations int        `json:"declarations"`
}

// Exporter writes index snapshots
type Exporter struct {
	compress bool
	logger   *logging.Logger
}

// NewExporter creates an exporter. When compress is set, snapshots are
// written as .json.zst.
func NewExporter(compress bool, logger *logging.Logger) *Exporter {
	return &Exporter{
		compress: compress,
		logger:   logger,
	}
}

// Export writes one vendor's snapshot into dir and returns its manifest.
// The checksum sidecar lands next to the snapshot with a .blake2b suffix.
func (e *Exporter) Export(ix *sdk.Index, dir string) (*Manifest, error) {
	snapshot := Snapshot{
		Vendor:       ix.Vendor(),
		BuildID:      ix.BuildID(),
		BuiltAt:      ix.BuiltAt(),
		Modules:      ix.Modules(),
		Declarations: ix.Flat(),
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	sum := blake2b.Sum256(data)
	checksum := hex.EncodeToString(sum[:])

	name := fmt.Sprintf("%s-%s.json", ix.Vendor(), shortID(ix.BuildID()))
	payload := data
	if e.compress {
		name += ".zst"
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
		}
		payload = enc.EncodeAll(data, nil)
		enc.Close()
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, payload, 0644); err != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.WriteFile(path+".blake2b", []byte(checksum+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("failed to write checksum: %w", err)
	}

	e.logger.Info("Exported index snapshot", map[string]interface{}{
		"vendor":       string(ix.Vendor()),
		"path":         path,
		"compressed":   e.compress,
		"declarations": ix.DeclarationCount(),
	})

	return &Manifest{
		Vendor:       ix.Vendor(),
		Path:         path,
		Compressed:   e.compress,
		Checksum:     checksum,
		SizeBytes:    len(payload),
		Modules:      ix.ModuleCount(),
		Declarations: ix.DeclarationCount(),
	}, nil
}

// ReadSnapshot loads a snapshot back, transparently decompressing .zst
// files and verifying the checksum sidecar when present
func ReadSnapshot(path string) (*Snapshot, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	data := payload
	if filepath.Ext(path) == ".zst" {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		data, err = dec.DecodeAll(payload, nil)
		dec.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to decompress snapshot: %w", err)
		}
	}

	if sumData, err := os.ReadFile(path + ".blake2b"); err == nil {
		sum := blake2b.Sum256(data)
		want := string(sumData)
		got := hex.EncodeToString(sum[:]) + "\n"
		if want != got {
			return nil, fmt.Errorf("snapshot checksum mismatch for %s", path)
		}
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snapshot, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
