// Package http exposes the lookup workflow, health, readiness, and metrics
// over HTTP, plus the embedded single-page UI.
package http

import (
	"context"
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/citywx/weather-lookup/internal/lookup"
)

//go:embed static
var staticFiles embed.FS

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// UIController is the slice of the lookup controller the handlers need.
type UIController interface {
	ReadinessChecker
	OnTextChange(text string)
	OnSubmit()
	OnSuggestionPick(name string)
	Snapshot() lookup.Snapshot
}

// Server exposes the lookup API together with health, readiness, and
// metrics endpoints.
type Server struct {
	httpServer *http.Server
	controller UIController
	logger     *slog.Logger
}

// NewServer creates the HTTP server and wires all routes.
func NewServer(addr string, controller UIController, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		controller: controller,
		logger:     logger,
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(err)
	}

	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/input", s.handleInput)
	mux.HandleFunc("POST /api/submit", s.handleSubmit)
	mux.HandleFunc("POST /api/pick", s.handlePick)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.controller.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

type inputRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	var req inputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	s.controller.OnTextChange(req.Text)
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

func (s *Server) handleSubmit(w http.ResponseWriter, _ *http.Request) {
	s.controller.OnSubmit()
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

type pickRequest struct {
	Name string `json:"name"`
}

func (s *Server) handlePick(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	s.controller.OnSuggestionPick(req.Name)
	writeJSON(w, http.StatusOK, s.controller.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
