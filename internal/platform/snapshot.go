package platform

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/galaview/gala-presenter/internal/model"
)

// Snapshot file name inside an exported offline bundle
const (
	SnapshotFileName = "snapshot.json"
)

// LoadSnapshot reads a frozen data snapshot from disk. Used by the
// no-network mode, which feeds the snapshot's hierarchy straight to the
// slide deck builder, bypassing fetch and normalization entirely.
func LoadSnapshot(path string) (*model.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()
	return ReadSnapshot(f)
}

// ReadSnapshot decodes a snapshot from a reader
func ReadSnapshot(r io.Reader) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// WriteSnapshot encodes a snapshot, stamping SavedAt if unset
func WriteSnapshot(w io.Writer, snap *model.Snapshot) error {
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
