// Package estimator - Thin API layer for the estimator service.
// The API is ONLY responsible for: webhook ingestion, handler
// orchestration, output serialization. Cost logic lives in core/estimate.
package estimator

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"takeoff-cost/adapters/notify"
)

// WebhookPath is the change-notification endpoint
const WebhookPath = "/api/Conditions/PostConditionsChange"

// Server is the estimator API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	version string

	// secret verifies incoming webhook signatures; empty disables
	// verification
	secret string
}

// NewServer creates a new estimator API server
func NewServer(version string, handler *Handler, secret string) *Server {
	s := &Server{
		handler: handler,
		mux:     http.NewServeMux(),
		version: version,
		secret:  secret,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.mux.HandleFunc("POST "+WebhookPath, s.handleConditionsChange)
	s.mux.HandleFunc("GET /api/Estimates/Latest", s.handleLatestEstimate)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
	s.mux.HandleFunc("GET /{$}", s.handleRoot)
}

// changeAck acknowledges a webhook before background processing runs
type changeAck struct {
	Status          string `json:"status"`
	Message         string `json:"message"`
	DocumentID      string `json:"documentId"`
	PageNumber      int    `json:"pageNumber"`
	ActionsReceived int    `json:"actionsReceived"`
}

// handleConditionsChange handles POST /api/Conditions/PostConditionsChange.
// It validates the notification, logs the actions, schedules the
// background fetch-and-estimate run and acknowledges immediately so the
// takeoff service never waits on recomputation.
func (s *Server) handleConditionsChange(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, "READ_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	if s.secret != "" {
		sig := r.Header.Get(notify.SignatureHeader)
		if !notify.VerifySignature(body, sig, s.secret) {
			s.writeError(w, "INVALID_SIGNATURE", "webhook signature verification failed", http.StatusUnauthorized)
			return
		}
	}

	var change changeRequest
	if err := json.Unmarshal(body, &change); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	if err := change.validate(); err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	notification := change.toNotification()
	s.handler.logActions(notification)
	s.handler.ProcessAsync(notification.DocumentID, notification.PageNumber)

	s.writeJSON(w, changeAck{
		Status:          "accepted",
		Message:         "Change notification received. Processing in background.",
		DocumentID:      notification.DocumentID.String(),
		PageNumber:      notification.PageNumber,
		ActionsReceived: len(notification.Actions),
	}, http.StatusOK)
}

// handleLatestEstimate handles GET /api/Estimates/Latest
func (s *Server) handleLatestEstimate(w http.ResponseWriter, r *http.Request) {
	latest := s.handler.Latest()
	if latest == nil {
		s.writeError(w, "NO_ESTIMATE", "no estimate has been computed yet", http.StatusNotFound)
		return
	}
	s.writeJSON(w, latest, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"service": "estimator",
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version": s.version,
		"service": "estimator",
	}, http.StatusOK)
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"service":     "Estimator Service API",
		"version":     s.version,
		"description": "Cost estimation service for takeoff measurements",
		"endpoints": map[string]string{
			"webhook":         WebhookPath,
			"latest_estimate": "/api/Estimates/Latest",
			"health":          "/health",
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
