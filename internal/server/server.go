// Package server wires the HTTP API: routing, request decoding, and the
// per-endpoint handlers that connect the access gate to the store.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caretrack/wellness/internal/auth"
	"github.com/caretrack/wellness/internal/httperr"
	"github.com/caretrack/wellness/internal/middleware"
	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
)

// Server holds the handler dependencies. Everything is injected so tests
// can build an isolated server around a fresh store.
type Server struct {
	store         storage.Store
	authenticator *auth.PasswordAuthenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// New creates a server around the given store and auth components.
func New(store storage.Store, authenticator *auth.PasswordAuthenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *Server {
	return &Server{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Routes builds the full handler: all API routes with their auth
// requirements, wrapped in metrics and request logging.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	requireAuth := middleware.RequireAuth(s.jwtManager)
	providerOnly := func(h http.HandlerFunc) http.Handler {
		return requireAuth(middleware.RequireRole(models.RoleProvider)(h))
	}
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.Handle("GET /api/users/me", protected(s.handleGetMe))
	mux.Handle("PUT /api/users/me", protected(s.handleUpdateMe))

	mux.Handle("GET /api/goals", protected(s.handleListGoals))
	mux.Handle("POST /api/goals", protected(s.handleCreateGoal))
	mux.Handle("PUT /api/goals/{id}", protected(s.handleUpdateGoal))
	mux.Handle("DELETE /api/goals/{id}", protected(s.handleDeleteGoal))

	mux.Handle("GET /api/reminders", protected(s.handleListReminders))
	mux.Handle("POST /api/reminders", protected(s.handleCreateReminder))
	mux.Handle("PUT /api/reminders/{id}", protected(s.handleUpdateReminder))
	mux.Handle("DELETE /api/reminders/{id}", protected(s.handleDeleteReminder))

	mux.Handle("GET /api/provider/patients", providerOnly(s.handleListPatients))
	mux.Handle("GET /api/provider/patients/{id}", providerOnly(s.handleGetPatientDetails))

	mux.Handle("GET /api/health-tip", protected(s.handleHealthTip))
	mux.HandleFunc("GET /api/public/health-info", s.handlePublicContent)

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Logging(middleware.Metrics(mux))
}

// writeJSON renders v as a JSON response with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// writeError renders err to the client. Anything outside the httperr
// taxonomy is logged with its real cause and rendered as a generic 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var apiErr *httperr.Error
	if !errors.As(err, &apiErr) {
		s.logger.Error("unexpected error", "error", err)
		apiErr = httperr.Internal("Internal server error")
	}
	httperr.Write(w, apiErr)
}

// decode parses the request body into v. Malformed JSON is a validation
// failure, not an internal error.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return httperr.ValidationFailed("Invalid request body")
	}
	return nil
}

// audit appends an entry to the audit log. Audit failures are logged but
// never fail the request that triggered them.
func (s *Server) audit(r *http.Request, userID string, action models.AuditAction, target string, metadata map[string]any) {
	entry := models.AuditEntry{
		UserID:         userID,
		Action:         action,
		TargetResource: target,
		Metadata:       metadata,
		IPAddress:      clientIP(r),
	}
	if err := s.store.AppendAudit(r.Context(), entry); err != nil {
		s.logger.Error("failed to append audit entry", "action", action, "user_id", userID, "error", err)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
