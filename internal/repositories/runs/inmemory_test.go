package runs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apperr "github.com/brownlk99/blue-prince-ml-sub000/internal/errors"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/game"
	"github.com/brownlk99/blue-prince-ml-sub000/internal/repositories/runs/mocks"
	uuidmocks "github.com/brownlk99/blue-prince-ml-sub000/internal/uuid/mocks"
)

func setupInMemory(t *testing.T) (Repository, *mocks.MockTimeProvider, *uuidmocks.MockGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	timeProvider := mocks.NewMockTimeProvider(ctrl)
	uuidGen := uuidmocks.NewMockGenerator(ctrl)
	repo := NewInMemory(&InMemoryConfig{
		TimeProvider:  timeProvider,
		UUIDGenerator: uuidGen,
	})
	return repo, timeProvider, uuidGen
}

func TestInMemory_CreateAssignsIDAndTimestamps(t *testing.T) {
	repo, timeProvider, uuidGen := setupInMemory(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	uuidGen.EXPECT().New().Return("generated-id")
	timeProvider.EXPECT().Now().Return(now)

	run := &game.Run{Day: 1, State: game.NewState(1)}
	require.NoError(t, repo.Create(ctx, run))
	assert.Equal(t, "generated-id", run.ID)
	assert.Equal(t, now, run.CreatedAt)
	assert.Equal(t, now, run.UpdatedAt)

	got, err := repo.Get(ctx, "generated-id")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Day)
}

func TestInMemory_CreateNil(t *testing.T) {
	repo, _, _ := setupInMemory(t)
	err := repo.Create(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestInMemory_GetReturnsCopy(t *testing.T) {
	repo, timeProvider, _ := setupInMemory(t)
	ctx := context.Background()
	timeProvider.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()

	run := &game.Run{ID: "r1", Day: 1, State: game.NewState(1)}
	require.NoError(t, repo.Create(ctx, run))

	first, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	first.State.Resources.Keys = 99

	second, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 0, second.State.Resources.Keys)
}

func TestInMemory_GetMissing(t *testing.T) {
	repo, _, _ := setupInMemory(t)
	_, err := repo.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemory_UpdateRequiresExisting(t *testing.T) {
	repo, timeProvider, _ := setupInMemory(t)
	ctx := context.Background()

	err := repo.Update(ctx, &game.Run{ID: "ghost", State: game.NewState(1)})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	timeProvider.EXPECT().Now().Return(time.Now().UTC()).Times(2)
	run := &game.Run{ID: "r1", Day: 1, State: game.NewState(1)}
	require.NoError(t, repo.Create(ctx, run))

	run.State.Resources.Gems = 5
	require.NoError(t, repo.Update(ctx, run))

	got, err := repo.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.State.Resources.Gems)
}

func TestInMemory_DeleteClearsLatest(t *testing.T) {
	repo, timeProvider, _ := setupInMemory(t)
	ctx := context.Background()
	timeProvider.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()

	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r1", Day: 1, State: game.NewState(1)}))
	require.NoError(t, repo.Delete(ctx, "r1"))

	_, err := repo.Get(ctx, "r1")
	assert.True(t, apperr.IsNotFound(err))
	_, err = repo.GetLatest(ctx)
	assert.True(t, apperr.IsNotFound(err))
}

func TestInMemory_GetLatestTracksCreates(t *testing.T) {
	repo, timeProvider, _ := setupInMemory(t)
	ctx := context.Background()
	timeProvider.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()

	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r1", Day: 1, State: game.NewState(1)}))
	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r2", Day: 2, State: game.NewState(2)}))

	latest, err := repo.GetLatest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "r2", latest.ID)
}

func TestInMemory_ListByDay(t *testing.T) {
	repo, timeProvider, _ := setupInMemory(t)
	ctx := context.Background()
	timeProvider.EXPECT().Now().Return(time.Now().UTC()).AnyTimes()

	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r1", Day: 1, State: game.NewState(1)}))
	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r2", Day: 2, State: game.NewState(2)}))
	require.NoError(t, repo.Create(ctx, &game.Run{ID: "r3", Day: 2, State: game.NewState(2)}))

	day2, err := repo.ListByDay(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, day2, 2)

	day9, err := repo.ListByDay(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, day9)
}
