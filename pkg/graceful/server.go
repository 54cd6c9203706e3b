// Package graceful runs the metrics and health HTTP server with a bounded
// drain on context cancellation.
package graceful

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// Server drives an http.Server whose lifetime is tied to a context.
type Server struct {
	srv     *http.Server
	log     *slog.Logger
	timeout time.Duration
}

// NewServer wraps srv; timeout bounds the drain on shutdown.
func NewServer(log *slog.Logger, srv *http.Server, timeout time.Duration) *Server {
	if log == nil {
		log = slog.Default()
	}

	return &Server{srv: srv, log: log, timeout: timeout}
}

// ListenAndServe serves until ctx is cancelled, then drains in-flight
// requests within the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	serveErr := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", slog.String("addr", s.srv.Addr))
		serveErr <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("draining http server", slog.Duration("timeout", s.timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
