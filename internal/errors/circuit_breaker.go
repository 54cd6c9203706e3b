package errors

import (
	"errors"
	"sync"
	"time"
)

const (
	// FailureThreshold consecutive failures trip the breaker.
	FailureThreshold = 5
	// CooldownDuration is how long the breaker stays open before probing.
	CooldownDuration = 2 * time.Minute
)

// ErrCircuitOpen is returned while the breaker refuses calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreaker shields the content provider from hammering an unreachable
// host: after FailureThreshold consecutive failures it rejects calls until
// CooldownDuration elapses, then lets a probe through.
type CircuitBreaker struct {
	mu       sync.Mutex
	failures int
	openedAt time.Time
	now      func() time.Time
}

func NewCircuitBreaker() *CircuitBreaker {
	return &CircuitBreaker{now: time.Now}
}

// Call runs fn unless the breaker is open. A success closes the breaker; a
// failure counts toward tripping it.
func (cb *CircuitBreaker) Call(fn func() error) error {
	if fn == nil {
		return nil
	}

	cb.mu.Lock()
	if cb.failures >= FailureThreshold {
		if cb.now().Sub(cb.openedAt) < CooldownDuration {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		// Cooldown elapsed: allow one probe by dropping below the threshold.
		cb.failures = FailureThreshold - 1
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if err != nil {
		cb.failures++
		if cb.failures == FailureThreshold {
			cb.openedAt = cb.now()
		}
		return err
	}

	cb.failures = 0
	return nil
}

// Open reports whether the breaker currently rejects calls.
func (cb *CircuitBreaker) Open() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.failures >= FailureThreshold && cb.now().Sub(cb.openedAt) < CooldownDuration
}
