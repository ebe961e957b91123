// Package compliance derives the provider-facing triage label from a
// patient's goal and reminder records.
//
// Classify is a pure projection: it holds no state, is recomputed on every
// read, and is never cached or incrementally updated.
package compliance

import "github.com/caretrack/wellness/internal/models"

// Report is the classification result together with the counts it was
// derived from. The counts are always computed, independent of the status.
type Report struct {
	Status models.ComplianceStatus

	// GoalsCompleted is the number of today's goals with progress >= target.
	GoalsCompleted int

	// TotalGoals is the number of goals dated exactly today.
	TotalGoals int

	PendingReminders int
	MissedReminders  int
}

// Classify maps a patient's goals and reminders to a compliance status for
// the given day (YYYY-MM-DD).
//
// Decision order, first match wins:
//  1. Any reminder with status "missed" -> missed-checkup.
//  2. Today's goal count > 0 and completed count strictly below half of
//     today's goal count (real division) -> needs-attention. A tie at
//     exactly half stays on-track.
//  3. Otherwise -> on-track. This is also the vacuous default when there
//     are no goals today and no reminders.
func Classify(goals []models.Goal, reminders []models.Reminder, today string) Report {
	report := Report{Status: models.StatusOnTrack}

	for i := range goals {
		if goals[i].Date != today {
			continue
		}
		report.TotalGoals++
		if goals[i].Completed() {
			report.GoalsCompleted++
		}
	}

	for i := range reminders {
		switch reminders[i].Status {
		case models.ReminderPending:
			report.PendingReminders++
		case models.ReminderMissed:
			report.MissedReminders++
		}
	}

	switch {
	case report.MissedReminders > 0:
		report.Status = models.StatusMissedCheckup
	case report.TotalGoals > 0 && float64(report.GoalsCompleted) < float64(report.TotalGoals)/2:
		report.Status = models.StatusNeedsAttention
	}

	return report
}
