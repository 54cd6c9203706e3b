package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisStorage_SetAndGet(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())

	ctx := context.Background()
	userState := &UserState{
		UserID:       123,
		CurrentState: StateAwaitingTime,
		Context:      TimeEditContext(-42, "evening"),
	}

	err := storage.SetState(ctx, userState.UserID, userState)
	assert.NoError(t, err)

	result, err := storage.GetState(ctx, userState.UserID)
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, userState.UserID, result.UserID)
		assert.Equal(t, userState.CurrentState, result.CurrentState)

		groupID, feature, ok := TimeEditTarget(result)
		assert.True(t, ok)
		assert.Equal(t, int64(-42), groupID)
		assert.Equal(t, "evening", string(feature))
	}
}

func TestRedisStorage_GetNotFound(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())

	_, err := storage.GetState(context.Background(), 999)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRedisStorage_ClearState(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())
	ctx := context.Background()

	err := storage.SetState(ctx, 5, &UserState{UserID: 5, CurrentState: StateAwaitingTime})
	assert.NoError(t, err)

	assert.NoError(t, storage.ClearState(ctx, 5))

	_, err = storage.GetState(ctx, 5)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRedisStorage_GetAllStates(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, testLogger())
	ctx := context.Background()

	for _, id := range []int64{1, 2, 3} {
		err := storage.SetState(ctx, id, &UserState{UserID: id, CurrentState: StateAwaitingTime})
		assert.NoError(t, err)
	}

	states, err := storage.GetAllStates(ctx)
	assert.NoError(t, err)
	assert.Len(t, states, 3)
}
