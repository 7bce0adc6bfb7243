package runs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/uuid"
)

const (
	runKeyPrefix = "run:"
	dayRunsKey   = "day:%d:runs"
	latestRunKey = "runs:latest"
)

// Data is the serialized form of a run snapshot
type Data struct {
	ID        string      `json:"id"`
	Day       int         `json:"day"`
	State     *game.State `json:"state"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RedisConfig holds the dependencies of the Redis-backed repository
type RedisConfig struct {
	Client        *redis.Client
	TimeProvider  TimeProvider
	UUIDGenerator uuid.Generator
}

type redisRepo struct {
	client        *redis.Client
	timeProvider  TimeProvider
	uuidGenerator uuid.Generator
}

// NewRedis creates a Redis-backed run repository
func NewRedis(cfg *RedisConfig) Repository {
	if cfg == nil {
		panic("config is required")
	}
	if cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.TimeProvider == nil {
		panic("time provider is required")
	}
	if cfg.UUIDGenerator == nil {
		panic("uuid generator is required")
	}
	return &redisRepo{
		client:        cfg.Client,
		timeProvider:  cfg.TimeProvider,
		uuidGenerator: cfg.UUIDGenerator,
	}
}

func (r *redisRepo) set(ctx context.Context, run *game.Run, markLatest bool) error {
	jsonData, err := json.Marshal(Data{
		ID:        run.ID,
		Day:       run.Day,
		State:     run.State,
		CreatedAt: run.CreatedAt,
		UpdatedAt: run.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal run data: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, runKeyPrefix+run.ID, string(jsonData), 0)
	pipe.SAdd(ctx, fmt.Sprintf(dayRunsKey, run.Day), run.ID)
	if markLatest {
		pipe.Set(ctx, latestRunKey, run.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set run in Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) Create(ctx context.Context, run *game.Run) error {
	if run == nil {
		return errors.InvalidArgument("run cannot be nil")
	}

	if run.ID == "" {
		run.ID = r.uuidGenerator.New()
	}
	now := r.timeProvider.Now()
	run.CreatedAt = now
	run.UpdatedAt = now

	return r.set(ctx, run, true)
}

func (r *redisRepo) Get(ctx context.Context, id string) (*game.Run, error) {
	jsonData, err := r.client.Get(ctx, runKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("run %s not found", id)
		}
		return nil, fmt.Errorf("failed to get run from Redis: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run data: %w", err)
	}

	return toRun(&data), nil
}

func (r *redisRepo) Update(ctx context.Context, run *game.Run) error {
	if run == nil {
		return errors.InvalidArgument("run cannot be nil")
	}
	if run.ID == "" {
		return errors.InvalidArgument("run ID cannot be empty")
	}

	run.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, run, false)
}

func (r *redisRepo) Delete(ctx context.Context, id string) error {
	run, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, runKeyPrefix+id)
	pipe.SRem(ctx, fmt.Sprintf(dayRunsKey, run.Day), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete run from Redis: %w", err)
	}

	return nil
}

func (r *redisRepo) GetLatest(ctx context.Context) (*game.Run, error) {
	id, err := r.client.Get(ctx, latestRunKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no runs recorded yet")
		}
		return nil, fmt.Errorf("failed to get latest run pointer from Redis: %w", err)
	}

	return r.Get(ctx, id)
}

func (r *redisRepo) ListByDay(ctx context.Context, day int) ([]*game.Run, error) {
	runIDs, err := r.client.SMembers(ctx, fmt.Sprintf(dayRunsKey, day)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get day runs from Redis: %w", err)
	}

	results := make([]*game.Run, len(runIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range runIDs {
		i, id := i, id
		g.Go(func() error {
			run, err := r.Get(ctx, id)
			if err != nil {
				return fmt.Errorf("failed to get run %s: %w", id, err)
			}
			results[i] = run
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func toRun(data *Data) *game.Run {
	if data == nil {
		return nil
	}

	return &game.Run{
		ID:        data.ID,
		Day:       data.Day,
		State:     data.State,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
