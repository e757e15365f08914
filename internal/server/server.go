// Package server exposes the planner over HTTP: plan creation, retrieval
// by id, and health/status endpoints, mirroring the JSON shapes of the
// original REST surface.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/llm"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/logging"
	"github.com/ibudubuduu/Smart-Task-Planner/internal/store"
)

// Server wires the planner and store behind an http.Server.
type Server struct {
	srv     *http.Server
	planner *llm.Planner
	store   *store.Store
	log     *logging.Logger
}

// New creates a server listening on addr.
func New(addr string, planner *llm.Planner, st *store.Store, log *logging.Logger) *Server {
	s := &Server{
		planner: planner,
		store:   st,
		log:     log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/plan", s.handleCreatePlan)
	mux.HandleFunc("GET /api/plan/{id}", s.handleGetPlan)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/llm-status", s.handleLLMStatus)

	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.middleware(mux),
	}
	return s
}

// Handler returns the full middleware-wrapped handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run serves until the context is cancelled or a termination signal
// arrives, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.srv.ListenAndServe()
	}()

	s.log.Info("server_started", map[string]any{
		"addr":   s.srv.Addr,
		"method": s.planner.Method(),
	})

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info("server_stopped", nil)
	return nil
}

// middleware attaches a request id, logs each request, and converts
// panics into opaque internal errors at the boundary.
func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		log := s.log.WithRequestID(requestID)
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				log.Error("request_panic", map[string]any{
					"path":  r.URL.Path,
					"panic": fmt.Sprint(rec),
				}, nil)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(r.Context()))

		log.TimedEvent("request", start, map[string]any{
			"http_method": r.Method,
			"path":        r.URL.Path,
		})
	})
}
