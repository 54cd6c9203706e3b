package graceful

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServerDrainsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := NewServer(testLogger(), &http.Server{Addr: "127.0.0.1:0"}, time.Second)

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestServerPropagatesListenError(t *testing.T) {
	s := NewServer(testLogger(), &http.Server{Addr: "127.0.0.1:-1"}, time.Second)
	assert.Error(t, s.ListenAndServe(context.Background()))
}

func TestNilServerIsNoop(t *testing.T) {
	s := NewServer(testLogger(), nil, time.Second)
	assert.NoError(t, s.ListenAndServe(context.Background()))
}
