// Package ratelimit throttles the bot's answers to group questions so a
// chatty group cannot flood the chat with curated responses.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Per-group answer budget: at most AnswerLimit answers per AnswerWindow.
const (
	AnswerLimit  = 3
	AnswerWindow = 5 * time.Minute
)

// Result captures the outcome of a rate-limit evaluation.
type Result struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter is a sliding-window counter keyed by string.
type Limiter interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}

// ErrLimitExceeded indicates the rate limit has been reached for the key.
var ErrLimitExceeded = errors.New("rate limit exceeded")

// AllowAnswer consumes one slot of the group's answer budget. A limiter
// outage fails open so a storage blip does not mute the bot; the error is
// returned for logging.
func AllowAnswer(ctx context.Context, l Limiter, groupID int64) (bool, error) {
	if l == nil {
		return true, nil
	}

	_, err := l.Check(ctx, fmt.Sprintf("answers:%d", groupID), AnswerLimit, AnswerWindow)
	switch {
	case errors.Is(err, ErrLimitExceeded):
		return false, nil
	case err != nil:
		return true, err
	default:
		return true, nil
	}
}
