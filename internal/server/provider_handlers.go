package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/caretrack/wellness/internal/compliance"
	"github.com/caretrack/wellness/internal/httperr"
	"github.com/caretrack/wellness/internal/middleware"
	"github.com/caretrack/wellness/internal/models"
	"github.com/caretrack/wellness/internal/storage"
)

func (s *Server) handleListPatients(w http.ResponseWriter, r *http.Request) {
	providerID := middleware.GetUserID(r.Context())

	patients, err := s.store.ListPatients(r.Context(), providerID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	today := time.Now().UTC().Format("2006-01-02")
	summaries := make([]models.PatientSummary, 0, len(patients))
	for _, patient := range patients {
		goals, err := s.store.ListGoals(r.Context(), patient.ID)
		if err != nil {
			s.writeError(w, err)
			return
		}
		reminders, err := s.store.ListReminders(r.Context(), patient.ID)
		if err != nil {
			s.writeError(w, err)
			return
		}

		report := compliance.Classify(goals, reminders, today)
		summaries = append(summaries, models.PatientSummary{
			ID:                patient.ID,
			Name:              patient.Name,
			Email:             patient.Email,
			LastActivity:      patient.UpdatedAt.Format(time.RFC3339),
			ComplianceStatus:  report.Status,
			GoalsCompleted:    report.GoalsCompleted,
			TotalGoals:        report.TotalGoals,
			UpcomingReminders: report.PendingReminders,
			MissedReminders:   report.MissedReminders,
		})
	}

	s.audit(r, providerID, models.ActionViewPatients, "patients", nil)
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPatientDetails(w http.ResponseWriter, r *http.Request) {
	providerID := middleware.GetUserID(r.Context())
	patientID := r.PathValue("id")

	patient, err := s.store.GetUser(r.Context(), patientID)
	if err != nil || patient.Role != models.RolePatient {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			s.writeError(w, err)
			return
		}
		s.writeError(w, httperr.NotFound("Patient not found"))
		return
	}

	// A patient's linked provider is the only one allowed to see their data.
	if patient.ProviderID != providerID {
		s.writeError(w, httperr.Forbidden("Access denied"))
		return
	}

	goals, err := s.store.ListGoals(r.Context(), patientID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	reminders, err := s.store.ListReminders(r.Context(), patientID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.audit(r, providerID, models.ActionViewPatientDetails, fmt.Sprintf("patient:%s", patientID), nil)
	s.writeJSON(w, http.StatusOK, models.PatientDetails{
		ID:        patient.ID,
		Name:      patient.Name,
		Email:     patient.Email,
		Profile:   patient.Profile,
		Goals:     goals,
		Reminders: reminders,
	})
}
