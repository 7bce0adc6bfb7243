// Package runs persists playthrough snapshots so a run can be resumed or
// reviewed across sessions.
package runs

import (
	"context"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs Repository

// Repository defines the interface for run storage operations
type Repository interface {
	Create(ctx context.Context, run *game.Run) error
	Get(ctx context.Context, id string) (*game.Run, error)
	Update(ctx context.Context, run *game.Run) error
	Delete(ctx context.Context, id string) error
	GetLatest(ctx context.Context) (*game.Run, error)
	ListByDay(ctx context.Context, day int) ([]*game.Run, error)
}
