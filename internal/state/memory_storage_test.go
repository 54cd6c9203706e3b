package state

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorage_SetGetClear(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	_, err := storage.GetState(ctx, 1)
	assert.ErrorIs(t, err, ErrStateNotFound)

	err = storage.SetState(ctx, 1, &UserState{
		UserID:       1,
		CurrentState: StateAwaitingTime,
		Context:      TimeEditContext(-7, "morning"),
	})
	assert.NoError(t, err)

	got, err := storage.GetState(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, StateAwaitingTime, got.CurrentState)
	assert.False(t, got.UpdatedAt.IsZero())

	// Mutating the returned copy must not leak into the store.
	got.CurrentState = StateError
	again, err := storage.GetState(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, StateAwaitingTime, again.CurrentState)

	assert.NoError(t, storage.ClearState(ctx, 1))
	_, err = storage.GetState(ctx, 1)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestMemoryStorage_GetAllStates(t *testing.T) {
	storage := NewMemoryStorage()
	ctx := context.Background()

	for _, id := range []int64{10, 20} {
		err := storage.SetState(ctx, id, &UserState{CurrentState: StateAwaitingTime})
		assert.NoError(t, err)
	}

	states, err := storage.GetAllStates(ctx)
	assert.NoError(t, err)
	assert.Len(t, states, 2)

	for _, s := range states {
		assert.Contains(t, []int64{10, 20}, s.UserID)
	}
}
