package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Repository is the summary snapshot archive.
type Repository interface {
	CreateSnapshot(ctx context.Context, in Snapshot) error
	GetSnapshot(ctx context.Context, id string) (Snapshot, error)
	ListSnapshots(ctx context.Context, filter SnapshotListFilter) ([]Snapshot, error)
	DeleteSnapshot(ctx context.Context, id string) error
}
