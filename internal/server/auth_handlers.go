package server

import (
	"errors"
	"net/http"

	"github.com/caretrack/wellness/internal/auth"
	"github.com/caretrack/wellness/internal/httperr"
	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/validation"
)

// authResponse is the body returned by register and login.
type authResponse struct {
	User  *models.SafeUser `json:"user"`
	Token string           `json:"token"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var insert models.InsertUser
	if err := decode(r, &insert); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(insert); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.authenticator.Register(r.Context(), insert)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			s.writeError(w, httperr.ValidationFailed("Email already registered"))
			return
		}
		s.logger.Error("registration failed", "email", insert.Email, "error", err)
		s.writeError(w, httperr.Internal("Failed to register user"))
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", "user_id", user.ID, "error", err)
		s.writeError(w, httperr.Internal("Failed to register user"))
		return
	}

	s.audit(r, user.ID, models.ActionLogin, "auth", map[string]any{"method": "register"})
	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)

	s.writeJSON(w, http.StatusCreated, authResponse{User: user.Safe(), Token: token})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if err := decode(r, &input); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(input); err != nil {
		s.writeError(w, err)
		return
	}

	user, err := s.authenticator.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		s.writeError(w, httperr.Unauthenticated("Invalid email or password"))
		return
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("failed to generate token", "user_id", user.ID, "error", err)
		s.writeError(w, httperr.Internal("Failed to login"))
		return
	}

	s.audit(r, user.ID, models.ActionLogin, "auth", nil)
	s.logger.Info("user logged in", "user_id", user.ID)

	s.writeJSON(w, http.StatusOK, authResponse{User: user.Safe(), Token: token})
}
