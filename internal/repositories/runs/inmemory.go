package runs

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/uuid"
)

// InMemoryRepository is an in-memory implementation of the run repository,
// used when no Redis is reachable. Snapshots are stored as serialized copies
// so callers cannot mutate stored state through retained pointers.
type InMemoryRepository struct {
	mu            sync.RWMutex
	runs          map[string][]byte
	days          map[string]int
	latestID      string
	timeProvider  TimeProvider
	uuidGenerator uuid.Generator
}

// InMemoryConfig holds the dependencies of the in-memory repository
type InMemoryConfig struct {
	TimeProvider  TimeProvider
	UUIDGenerator uuid.Generator
}

// NewInMemory creates a new in-memory run repository
func NewInMemory(cfg *InMemoryConfig) Repository {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.TimeProvider == nil {
		panic("time provider is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}
	return &InMemoryRepository{
		runs:          make(map[string][]byte),
		days:          make(map[string]int),
		timeProvider:  cfg.TimeProvider,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (r *InMemoryRepository) store(run *game.Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return errors.Wrap(err, "failed to marshal run")
	}
	r.runs[run.ID] = data
	r.days[run.ID] = run.Day
	return nil
}

// Create stores a new run snapshot and marks it as the latest
func (r *InMemoryRepository) Create(ctx context.Context, run *game.Run) error {
	if run == nil {
		return errors.InvalidArgument("run cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if run.ID == "" {
		run.ID = r.uuidGenerator.New()
	}
	now := r.timeProvider.Now()
	run.CreatedAt = now
	run.UpdatedAt = now

	if err := r.store(run); err != nil {
		return err
	}
	r.latestID = run.ID
	return nil
}

// Get retrieves a run snapshot by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*game.Run, error) {
	if id == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.runs[id]
	if !exists {
		return nil, errors.NotFoundf("run %s not found", id)
	}

	var run game.Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal run")
	}
	return &run, nil
}

// Update overwrites an existing run snapshot
func (r *InMemoryRepository) Update(ctx context.Context, run *game.Run) error {
	if run == nil {
		return errors.InvalidArgument("run cannot be nil")
	}
	if run.ID == "" {
		return errors.InvalidArgument("run ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; !exists {
		return errors.NotFoundf("run %s not found", run.ID)
	}

	run.UpdatedAt = r.timeProvider.Now()
	return r.store(run)
}

// Delete removes a run snapshot
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.InvalidArgument("run ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[id]; !exists {
		return errors.NotFoundf("run %s not found", id)
	}

	delete(r.runs, id)
	delete(r.days, id)
	if r.latestID == id {
		r.latestID = ""
	}
	return nil
}

// GetLatest retrieves the most recently created run
func (r *InMemoryRepository) GetLatest(ctx context.Context) (*game.Run, error) {
	r.mu.RLock()
	id := r.latestID
	r.mu.RUnlock()

	if id == "" {
		return nil, errors.NotFound("no runs recorded yet")
	}
	return r.Get(ctx, id)
}

// ListByDay retrieves every run recorded for the given day
func (r *InMemoryRepository) ListByDay(ctx context.Context, day int) ([]*game.Run, error) {
	r.mu.RLock()
	ids := make([]string, 0)
	for id, d := range r.days {
		if d == day {
			ids = append(ids, id)
		}
	}
	r.mu.RUnlock()

	results := make([]*game.Run, 0, len(ids))
	for _, id := range ids {
		run, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		results = append(results, run)
	}
	return results, nil
}
