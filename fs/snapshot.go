// Package fs provides file-based persistence for crawl snapshots and the
// Markdown documentation export.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/docbuzz/docbuzz"
)

// DefaultSnapshotFile is the snapshot filename used when none is given.
const DefaultSnapshotFile = "kluster_docs_data.json"

// Ensure SnapshotStore implements docbuzz.SnapshotStore at compile time.
var _ docbuzz.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists crawl snapshots as a single JSON file with atomic
// update semantics. Save writes to a temporary file in the same directory
// and renames it into place, so readers never observe a partially written
// snapshot.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore creates a SnapshotStore writing to path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save writes the snapshot atomically.
func (s *SnapshotStore) Save(ctx context.Context, snap *docbuzz.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

// Load reads the most recently saved snapshot. It returns ENOTFOUND when
// no snapshot exists yet or the file cannot be parsed.
func (s *SnapshotStore) Load(ctx context.Context) (*docbuzz.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, docbuzz.Errorf(docbuzz.ENOTFOUND, "no documentation data found at %s", s.path)
		}
		return nil, err
	}

	var snap docbuzz.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, docbuzz.Errorf(docbuzz.ENOTFOUND, "documentation data at %s is not readable: %v", s.path, err)
	}

	return &snap, nil
}
