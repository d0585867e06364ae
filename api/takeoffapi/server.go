// Package takeoffapi - Thin API layer for the takeoff service.
// The API is ONLY responsible for: query parsing, state lookup, output
// serialization. It performs no measurement or cost logic.
package takeoffapi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"takeoff-cost/core/takeoff"
	"takeoff-cost/internal/logging"
)

// StateStore supplies measurement state for document pages
type StateStore interface {
	// PageState returns the complete state for a document page
	PageState(ctx context.Context, documentID uuid.UUID, pageNumber int) (*takeoff.PageState, error)
}

// Server is the takeoff service API server
type Server struct {
	store   StateStore
	mux     *http.ServeMux
	version string
	log     *zap.Logger
}

// NewServer creates a new takeoff API server
func NewServer(version string, store StateStore) *Server {
	s := &Server{
		store:   store,
		mux:     http.NewServeMux(),
		version: version,
		log:     logging.Named("takeoff"),
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /api/Conditions/GetAllConditionsState", s.handleGetState)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

// handleGetState handles GET /api/Conditions/GetAllConditionsState.
// It returns the full zone/condition/item hierarchy the estimator needs
// to recompute a cost estimate.
func (s *Server) handleGetState(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(r.URL.Query().Get("documentId"))
	if err != nil {
		s.writeError(w, "INVALID_DOCUMENT_ID", "documentId must be a valid UUID", http.StatusBadRequest)
		return
	}

	pageNumber, err := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	if err != nil || pageNumber < 1 {
		s.writeError(w, "INVALID_PAGE_NUMBER", "pageNumber must be an integer >= 1", http.StatusBadRequest)
		return
	}

	state, err := s.store.PageState(r.Context(), documentID, pageNumber)
	if err != nil {
		s.writeError(w, "STATE_ERROR", err.Error(), http.StatusInternalServerError)
		return
	}

	s.log.Info("returning page state",
		zap.String("document_id", documentID.String()),
		zap.Int("page_number", pageNumber),
		zap.Int("zones", len(state.Zones)),
		zap.Int("conditions", state.CountConditions()),
		zap.Int("items", state.CountItems()),
	)

	s.writeJSON(w, state, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"service": "takeoff",
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"service": "takeoff",
	}, http.StatusOK)
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"service":     "Takeoff Service API",
		"version":     s.version,
		"description": "Construction measurement data provider",
		"endpoints": map[string]string{
			"get_conditions_state": "/api/Conditions/GetAllConditionsState",
			"health":               "/health",
		},
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, status int) {
	s.writeJSON(w, map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
