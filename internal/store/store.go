package store

import (
	"context"

	"github.com/me/schedsim/pkg/model"
)

// Store defines the persistence layer for simulation runs.
type Store interface {
	CreateRun(ctx context.Context, run *model.Run) error
	// GetRun returns the run with the given ID, or (nil, nil) if absent.
	GetRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context) ([]model.RunSummary, error)
	DeleteRun(ctx context.Context, id string) error

	Migrate(ctx context.Context) error
	Close() error
}
