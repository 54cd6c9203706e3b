package state

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var errStorageFailure = errors.New("storage error")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) GetState(ctx context.Context, userID int64) (*UserState, error) {
	args := m.Called(ctx, userID)
	state, _ := args.Get(0).(*UserState)
	return state, args.Error(1)
}

func (m *mockStorage) SetState(ctx context.Context, userID int64, state *UserState) error {
	args := m.Called(ctx, userID, state)
	return args.Error(0)
}

func (m *mockStorage) ClearState(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockStorage) GetAllStates(ctx context.Context) ([]*UserState, error) {
	args := m.Called(ctx)
	states, _ := args.Get(0).([]*UserState)
	return states, args.Error(1)
}

func TestStateMachine_TransitionTo(t *testing.T) {
	ctx := context.Background()
	userID := int64(42)
	log := testLogger()

	testCases := []struct {
		name        string
		setupMocks  func(ms *mockStorage)
		newState    State
		expectedErr error
	}{
		{
			name: "successful transition into dialog",
			setupMocks: func(ms *mockStorage) {
				ms.On("GetState", mock.Anything, userID).
					Return(&UserState{CurrentState: StateIdle}, nil).Once()
				ms.On("SetState", mock.Anything, userID, mock.MatchedBy(func(state *UserState) bool {
					return state.CurrentState == StateAwaitingTime
				})).Return(nil).Once()
			},
			newState:    StateAwaitingTime,
			expectedErr: nil,
		},
		{
			name: "missing state defaults to idle",
			setupMocks: func(ms *mockStorage) {
				ms.On("GetState", mock.Anything, userID).
					Return((*UserState)(nil), ErrStateNotFound).Once()
				ms.On("SetState", mock.Anything, userID, mock.Anything).Return(nil).Once()
			},
			newState:    StateAwaitingTime,
			expectedErr: nil,
		},
		{
			name: "invalid transition rejected",
			setupMocks: func(ms *mockStorage) {
				ms.On("GetState", mock.Anything, userID).
					Return(&UserState{CurrentState: StateError}, nil).Once()
			},
			newState:    StateAwaitingTime,
			expectedErr: ErrInvalidTransition,
		},
		{
			name: "storage failure propagates",
			setupMocks: func(ms *mockStorage) {
				ms.On("GetState", mock.Anything, userID).
					Return((*UserState)(nil), errStorageFailure).Once()
			},
			newState:    StateAwaitingTime,
			expectedErr: errStorageFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := &mockStorage{}
			tc.setupMocks(storage)

			fsm := NewStateMachine(storage, log, nil)
			err := fsm.TransitionTo(ctx, userID, tc.newState)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			storage.AssertExpectations(t)
		})
	}
}

func TestStateMachine_SetStateCarriesDialogContext(t *testing.T) {
	ctx := context.Background()
	storage := &mockStorage{}

	contextData := TimeEditContext(-100, "morning")
	storage.On("SetState", mock.Anything, int64(7), mock.MatchedBy(func(state *UserState) bool {
		groupID, feature, ok := TimeEditTarget(state)
		return ok && groupID == -100 && string(feature) == "morning"
	})).Return(nil).Once()

	fsm := NewStateMachine(storage, testLogger(), nil)
	err := fsm.SetState(ctx, 7, StateAwaitingTime, contextData)

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestStateMachine_RedisLockBlocksConcurrentMutation(t *testing.T) {
	ctx := context.Background()
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	userID := int64(9)

	// Simulate a concurrently held lock.
	err := client.SetNX(ctx, "dialog:lock:9", 1, lockTTL).Err()
	assert.NoError(t, err)

	storage := &mockStorage{}
	fsm := NewStateMachine(storage, testLogger(), client)

	err = fsm.SetState(ctx, userID, StateAwaitingTime, nil)
	assert.ErrorIs(t, err, ErrStateLocked)
	storage.AssertExpectations(t)
}

func TestStateMachine_ClearState(t *testing.T) {
	ctx := context.Background()
	storage := &mockStorage{}
	storage.On("ClearState", mock.Anything, int64(11)).Return(nil).Once()

	fsm := NewStateMachine(storage, testLogger(), nil)
	assert.NoError(t, fsm.ClearState(ctx, 11))
	storage.AssertExpectations(t)
}

func TestTimeEditTarget(t *testing.T) {
	s := &UserState{
		CurrentState: StateAwaitingTime,
		Context:      TimeEditContext(-555, "friday"),
	}

	groupID, feature, ok := TimeEditTarget(s)
	assert.True(t, ok)
	assert.Equal(t, int64(-555), groupID)
	assert.Equal(t, "friday", string(feature))

	_, _, ok = TimeEditTarget(nil)
	assert.False(t, ok)

	_, _, ok = TimeEditTarget(&UserState{CurrentState: StateIdle, Context: s.Context})
	assert.False(t, ok)

	_, _, ok = TimeEditTarget(&UserState{CurrentState: StateAwaitingTime, Context: map[string]interface{}{
		"group_id": "-1",
		"feature":  "not_a_feature",
	}})
	assert.False(t, ok)
}
