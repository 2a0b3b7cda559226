// Package httpapi exposes the sync services over a small JSON API for the
// game-server host process. Events arrive as POSTs; the endpoints are local
// plumbing between host and daemon, not a public surface.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/example/playersync/internal/ports/primary"
)

// Server wires the primary services onto an HTTP listener.
type Server struct {
	sweeps    primary.SweepService
	lifecycle primary.LifecycleService
	telemetry primary.TelemetryService
	logger    *slog.Logger

	httpServer *http.Server
}

// NewServer creates a Server listening on addr.
func NewServer(
	addr string,
	sweeps primary.SweepService,
	lifecycle primary.LifecycleService,
	telemetry primary.TelemetryService,
	logger *slog.Logger,
) *Server {
	s := &Server{
		sweeps:    sweeps,
		lifecycle: lifecycle,
		telemetry: telemetry,
		logger:    logger,
	}
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Router builds the route table. Exposed so tests can drive the handlers
// without a listener.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/v1/events/arrival", s.handleArrival).Methods(http.MethodPost)
	router.HandleFunc("/v1/events/departure", s.handleDeparture).Methods(http.MethodPost)
	router.HandleFunc("/v1/events/elimination", s.handleElimination).Methods(http.MethodPost)
	router.HandleFunc("/v1/events/capture", s.handleCapture).Methods(http.MethodPost)
	router.HandleFunc("/v1/sweep", s.handleSweep).Methods(http.MethodPost)
	router.HandleFunc("/v1/status", s.handleStatus).Methods(http.MethodGet)
	return router
}

// Start begins serving and blocks until the listener closes.
func (s *Server) Start() error {
	s.logger.Info("http api listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

type playerEvent struct {
	Player string `json:"player"`
}

type eliminationEvent struct {
	Killer string `json:"killer"`
	Victim string `json:"victim"`
}

type statusResponse struct {
	OpenSessions int                  `json:"open_sessions"`
	LastSweep    *primary.SweepReport `json:"last_sweep"`
}

func (s *Server) handleArrival(w http.ResponseWriter, r *http.Request) {
	var event playerEvent
	if !decode(w, r, &event) {
		return
	}
	if event.Player == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}
	if err := s.lifecycle.HandleArrival(r.Context(), event.Player); err != nil {
		s.fail(w, "arrival failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeparture(w http.ResponseWriter, r *http.Request) {
	var event playerEvent
	if !decode(w, r, &event) {
		return
	}
	if event.Player == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}
	if err := s.lifecycle.HandleDeparture(r.Context(), event.Player); err != nil {
		s.fail(w, "departure failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleElimination(w http.ResponseWriter, r *http.Request) {
	var event eliminationEvent
	if !decode(w, r, &event) {
		return
	}
	if event.Killer == "" && event.Victim == "" {
		http.Error(w, "killer or victim is required", http.StatusBadRequest)
		return
	}
	if err := s.telemetry.RecordElimination(r.Context(), event.Killer, event.Victim); err != nil {
		s.fail(w, "elimination failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	var event playerEvent
	if !decode(w, r, &event) {
		return
	}
	if event.Player == "" {
		http.Error(w, "player is required", http.StatusBadRequest)
		return
	}
	if err := s.telemetry.RecordCapture(r.Context(), event.Player); err != nil {
		s.fail(w, "capture failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSweep(w http.ResponseWriter, r *http.Request) {
	report, err := s.sweeps.RunSweep(r.Context())
	if err != nil {
		if errors.Is(err, primary.ErrSweepRunning) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.fail(w, "sweep failed", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, statusResponse{
		OpenSessions: s.lifecycle.OpenSessions(),
		LastSweep:    s.sweeps.LastReport(),
	})
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.logger.Error(msg, "error", err)
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
