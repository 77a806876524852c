package mock

import (
	"context"

	"github.com/docbuzz/docbuzz"
)

var _ docbuzz.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of docbuzz.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(ctx context.Context, snapshot *docbuzz.Snapshot) error
	LoadFn func(ctx context.Context) (*docbuzz.Snapshot, error)
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot *docbuzz.Snapshot) error {
	return s.SaveFn(ctx, snapshot)
}

func (s *SnapshotStore) Load(ctx context.Context) (*docbuzz.Snapshot, error) {
	return s.LoadFn(ctx)
}
