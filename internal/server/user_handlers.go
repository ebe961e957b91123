package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/caretrack/wellness/internal/httperr"
	"github.com/caretrack/wellness/internal/middleware"
	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
	"github.com/caretrack/wellness/internal/validation"
)

func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := s.store.GetSafeUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, httperr.NotFound("User not found"))
			return
		}
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionViewProfile, fmt.Sprintf("user:%s", userID), nil)
	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateMe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var updates models.UpdateProfile
	if err := decode(r, &updates); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(updates); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.store.UpdateProfile(r.Context(), userID, updates)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, httperr.NotFound("User not found"))
			return
		}
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionUpdateProfile, fmt.Sprintf("user:%s", userID), nil)
	s.writeJSON(w, http.StatusOK, user)
}
