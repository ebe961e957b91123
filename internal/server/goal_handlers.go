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

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	goals, err := s.store.ListGoals(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionViewGoals, "goals", nil)
	s.writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var insert models.InsertGoal
	if err := decode(r, &insert); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(insert); err != nil {
		s.writeError(w, err)
		return
	}

	goal := &models.Goal{
		UserID:        userID,
		GoalType:      insert.GoalType,
		TargetValue:   insert.TargetValue,
		ProgressValue: insert.ProgressValue,
		Unit:          insert.Unit,
		Date:          insert.Date,
	}
	if err := s.store.CreateGoal(r.Context(), goal); err != nil {
		s.logger.Error("failed to create goal", "user_id", userID, "error", err)
		s.writeError(w, httperr.Internal("Failed to create goal"))
		return
	}

	s.audit(r, userID, models.ActionCreateGoal, fmt.Sprintf("goal:%s", goal.ID),
		map[string]any{"goalType": goal.GoalType})
	s.writeJSON(w, http.StatusCreated, goal)
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	var update models.UpdateGoal
	if err := decode(r, &update); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(update); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.verifyGoalOwnership(r, id, userID); err != nil {
		s.writeError(w, err)
		return
	}

	goal, err := s.store.UpdateGoalProgress(r.Context(), id, *update.ProgressValue)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, httperr.NotFound("Goal not found"))
			return
		}
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionUpdateGoal, fmt.Sprintf("goal:%s", id),
		map[string]any{"newProgress": *update.ProgressValue})
	s.writeJSON(w, http.StatusOK, goal)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := s.verifyGoalOwnership(r, id, userID); err != nil {
		s.writeError(w, err)
		return
	}

	if _, err := s.store.DeleteGoal(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionDeleteGoal, fmt.Sprintf("goal:%s", id), nil)
	w.WriteHeader(http.StatusNoContent)
}

// verifyGoalOwnership loads the goal and checks the caller owns it:
// 404 when the id does not resolve, 403 when it belongs to someone else.
func (s *Server) verifyGoalOwnership(r *http.Request, id, userID string) error {
	goal, err := s.store.GetGoal(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return httperr.NotFound("Goal not found")
		}
		return err
	}
	if goal.UserID != userID {
		return httperr.Forbidden("Access denied")
	}
	return nil
}
