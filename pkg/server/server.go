// Package server exposes the translation engine over a small HTTP surface:
// a lookup endpoint, a health check, and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"glossa-hq/rosetta/pkg/config"
	"glossa-hq/rosetta/pkg/engine"
	"glossa-hq/rosetta/pkg/telemetry/metrics"
)

// Server serves translation lookups over HTTP.
type Server struct {
	config     config.ServerConfig
	engine     *engine.Engine
	registry   *prometheus.Registry
	logger     *slog.Logger
	httpServer *http.Server
	mu         sync.Mutex
	running    bool
}

// New creates a translation server. registry may be nil to disable the
// metrics endpoint.
func New(cfg config.ServerConfig, eng *engine.Engine, registry *prometheus.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config:   cfg,
		engine:   eng,
		registry: registry,
		logger:   logger.With("component", "server"),
	}
}

// Start runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.running = true
	s.mu.Unlock()

	s.httpServer = &http.Server{
		Addr:         s.config.ListenAddress,
		Handler:      s.routes(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("translation server listening", "address", s.config.ListenAddress)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down translation server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/translate", s.handleTranslate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.registry != nil {
		mux.Handle("GET /metrics", metrics.Handler(s.registry))
	}
	return mux
}

// translateResponse is the JSON body of a successful lookup.
type translateResponse struct {
	Key         string `json:"key"`
	Context     string `json:"context,omitempty"`
	Translation string `json:"translation"`
}

// handleTranslate resolves ?key=...&context=...&arg=...&arg=... Arguments
// that parse as numbers are passed numerically so they go through the
// numeric formatter.
func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	key := q.Get("key")
	if key == "" {
		http.Error(w, "missing key parameter", http.StatusBadRequest)
		return
	}
	tctx := q.Get("context")

	var args []any
	for _, raw := range q["arg"] {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			args = append(args, n)
			continue
		}
		args = append(args, raw)
	}

	text, err := s.engine.ContextTranslate(r.Context(), tctx, key, args...)
	if err != nil {
		s.logger.Error("translate request failed", "key", key, "error", err)
		http.Error(w, "lookup failed", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(translateResponse{Key: key, Context: tctx, Translation: text}); err != nil {
		s.logger.Error("failed to write response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok"}`)
}
