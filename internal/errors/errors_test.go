package errors

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlerResolvesUserMessage(t *testing.T) {
	h := NewHandler(testLogger(), false)
	ctx := context.Background()

	msg, retryable := h.Handle(ctx, NewProviderError("morning", errors.New("boom")))
	assert.NotEmpty(t, msg)
	assert.True(t, retryable)

	msg, retryable = h.Handle(ctx, NewPermissionError())
	assert.Equal(t, "⛔️ هذا الأمر متاح للمدراء فقط", msg)
	assert.False(t, retryable)

	// Unknown actions stay silent toward the chat.
	msg, _ = h.Handle(ctx, NewUnknownActionError("bogus:1"))
	assert.Empty(t, msg)

	// Non-application errors fall back to the generic message.
	msg, retryable = h.Handle(ctx, errors.New("plain failure"))
	assert.Equal(t, fallbackUserMessage, msg)
	assert.False(t, retryable)

	msg, _ = h.Handle(ctx, nil)
	assert.Empty(t, msg)
}

func TestWithRetryRetriesRetryableErrors(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		if attempts <= MaxRetries {
			return NewTransportError("send", errors.New("flaky"))
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, MaxRetries+1, attempts)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	attempts := 0
	err := WithRetry(context.Background(), func() error {
		attempts++
		return NewPermissionError()
	})

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestWithRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WithRetry(ctx, func() error {
		return NewProviderError("morning", errors.New("down"))
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCircuitBreakerTripsAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker()
	failing := func() error { return errors.New("upstream down") }

	for i := 0; i < FailureThreshold; i++ {
		assert.Error(t, cb.Call(failing))
	}

	assert.True(t, cb.Open())
	assert.ErrorIs(t, cb.Call(failing), ErrCircuitOpen)
}

func TestCircuitBreakerProbesAfterCooldown(t *testing.T) {
	cb := NewCircuitBreaker()
	now := time.Now()
	cb.now = func() time.Time { return now }

	for i := 0; i < FailureThreshold; i++ {
		_ = cb.Call(func() error { return errors.New("down") })
	}
	assert.True(t, cb.Open())

	now = now.Add(CooldownDuration + time.Second)

	assert.NoError(t, cb.Call(func() error { return nil }))
	assert.False(t, cb.Open())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewProviderError("evening", errors.New("x"))))
	assert.False(t, IsRetryable(NewAdjustmentError("below floor")))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}
