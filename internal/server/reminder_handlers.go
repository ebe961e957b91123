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

func (s *Server) handleListReminders(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reminders, err := s.store.ListReminders(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionViewReminders, "reminders", nil)
	s.writeJSON(w, http.StatusOK, reminders)
}

func (s *Server) handleCreateReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var insert models.InsertReminder
	if err := decode(r, &insert); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(insert); err != nil {
		s.writeError(w, err)
		return
	}

	reminder := &models.Reminder{
		UserID:      userID,
		Title:       insert.Title,
		Description: insert.Description,
		DueDate:     insert.DueDate,
		Status:      models.ReminderPending,
		Category:    insert.Category,
	}
	if err := s.store.CreateReminder(r.Context(), reminder); err != nil {
		s.logger.Error("failed to create reminder", "user_id", userID, "error", err)
		s.writeError(w, httperr.Internal("Failed to create reminder"))
		return
	}

	s.audit(r, userID, models.ActionCreateReminder, fmt.Sprintf("reminder:%s", reminder.ID), nil)
	s.writeJSON(w, http.StatusCreated, reminder)
}

func (s *Server) handleUpdateReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	var update models.ReminderUpdate
	if err := decode(r, &update); err != nil {
		s.writeError(w, err)
		return
	}
	if err := validation.Check(update); err != nil {
		s.writeError(w, err)
		return
	}

	if err := s.verifyReminderOwnership(r, id, userID); err != nil {
		s.writeError(w, err)
		return
	}

	reminder, err := s.store.UpdateReminder(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, httperr.NotFound("Reminder not found"))
			return
		}
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionUpdateReminder, fmt.Sprintf("reminder:%s", id), nil)
	s.writeJSON(w, http.StatusOK, reminder)
}

func (s *Server) handleDeleteReminder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := s.verifyReminderOwnership(r, id, userID); err != nil {
		s.writeError(w, err)
		return
	}

	if _, err := s.store.DeleteReminder(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}

	s.audit(r, userID, models.ActionDeleteReminder, fmt.Sprintf("reminder:%s", id), nil)
	w.WriteHeader(http.StatusNoContent)
}

// verifyReminderOwnership mirrors verifyGoalOwnership for reminders.
func (s *Server) verifyReminderOwnership(r *http.Request, id, userID string) error {
	reminder, err := s.store.GetReminder(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return httperr.NotFound("Reminder not found")
		}
		return err
	}
	if reminder.UserID != userID {
		return httperr.Forbidden("Access denied")
	}
	return nil
}
