package compliance

import (
	"testing"

	"github.com/caretrack/wellness/internal/models"
)

const today = "2025-01-06"

func goal(date string, progress, target float64) models.Goal {
	return models.Goal{
		GoalType:      models.GoalSteps,
		Date:          date,
		ProgressValue: progress,
		TargetValue:   target,
	}
}

func reminder(status models.ReminderStatus) models.Reminder {
	return models.Reminder{Status: status, Category: models.CategoryCheckup}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name          string
		goals         []models.Goal
		reminders     []models.Reminder
		wantStatus    models.ComplianceStatus
		wantCompleted int
		wantTotal     int
		wantPending   int
		wantMissed    int
	}{
		{
			name:       "no goals and no reminders is on-track",
			wantStatus: models.StatusOnTrack,
		},
		{
			name: "missed reminder wins over full goal completion",
			goals: []models.Goal{
				goal(today, 10, 10),
				goal(today, 8, 8),
				goal(today, 5, 5),
				goal(today, 3, 3),
				goal(today, 1, 1),
			},
			reminders: []models.Reminder{
				reminder(models.ReminderMissed),
			},
			wantStatus:    models.StatusMissedCheckup,
			wantCompleted: 5,
			wantTotal:     5,
			wantMissed:    1,
		},
		{
			name: "exactly half complete is on-track",
			goals: []models.Goal{
				goal(today, 10, 10),
				goal(today, 8, 8),
				goal(today, 2, 5),
				goal(today, 0, 5),
			},
			reminders: []models.Reminder{
				reminder(models.ReminderPending),
			},
			wantStatus:    models.StatusOnTrack,
			wantCompleted: 2,
			wantTotal:     4,
			wantPending:   1,
		},
		{
			name: "one of four complete needs attention",
			goals: []models.Goal{
				goal(today, 10, 10),
				goal(today, 1, 5),
				goal(today, 2, 5),
				goal(today, 0, 5),
			},
			wantStatus:    models.StatusNeedsAttention,
			wantCompleted: 1,
			wantTotal:     4,
		},
		{
			name: "one of three complete needs attention with real division",
			goals: []models.Goal{
				goal(today, 10, 10),
				goal(today, 0, 5),
				goal(today, 0, 5),
			},
			wantStatus:    models.StatusNeedsAttention,
			wantCompleted: 1,
			wantTotal:     3,
		},
		{
			name: "two of three complete is on-track",
			goals: []models.Goal{
				goal(today, 10, 10),
				goal(today, 5, 5),
				goal(today, 0, 5),
			},
			wantStatus:    models.StatusOnTrack,
			wantCompleted: 2,
			wantTotal:     3,
		},
		{
			name: "no goals today with only pending reminders is on-track",
			reminders: []models.Reminder{
				reminder(models.ReminderPending),
				reminder(models.ReminderPending),
			},
			wantStatus:  models.StatusOnTrack,
			wantPending: 2,
		},
		{
			name: "goals on other days are ignored",
			goals: []models.Goal{
				goal("2025-01-05", 0, 10),
				goal("2025-01-04", 0, 10),
			},
			wantStatus: models.StatusOnTrack,
		},
		{
			name: "completed reminders do not affect the decision",
			goals: []models.Goal{
				goal(today, 0, 10),
			},
			reminders: []models.Reminder{
				reminder(models.ReminderCompleted),
				reminder(models.ReminderCompleted),
			},
			wantStatus: models.StatusNeedsAttention,
			wantTotal:  1,
		},
		{
			name: "single incomplete goal needs attention",
			goals: []models.Goal{
				goal(today, 4, 10),
			},
			wantStatus: models.StatusNeedsAttention,
			wantTotal:  1,
		},
		{
			name: "progress over target still counts as complete",
			goals: []models.Goal{
				goal(today, 12, 10),
			},
			wantStatus:    models.StatusOnTrack,
			wantCompleted: 1,
			wantTotal:     1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.goals, tt.reminders, today)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.GoalsCompleted != tt.wantCompleted {
				t.Errorf("GoalsCompleted = %d, want %d", got.GoalsCompleted, tt.wantCompleted)
			}
			if got.TotalGoals != tt.wantTotal {
				t.Errorf("TotalGoals = %d, want %d", got.TotalGoals, tt.wantTotal)
			}
			if got.PendingReminders != tt.wantPending {
				t.Errorf("PendingReminders = %d, want %d", got.PendingReminders, tt.wantPending)
			}
			if got.MissedReminders != tt.wantMissed {
				t.Errorf("MissedReminders = %d, want %d", got.MissedReminders, tt.wantMissed)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	goals := []models.Goal{
		goal(today, 10, 10),
		goal(today, 3, 8),
	}
	reminders := []models.Reminder{
		reminder(models.ReminderPending),
		reminder(models.ReminderMissed),
	}

	first := Classify(goals, reminders, today)
	second := Classify(goals, reminders, today)

	if first != second {
		t.Errorf("Classify is not deterministic: %+v != %+v", first, second)
	}
}

func TestClassifyDoesNotMutateInputs(t *testing.T) {
	goals := []models.Goal{goal(today, 1, 10)}
	reminders := []models.Reminder{reminder(models.ReminderPending)}

	Classify(goals, reminders, today)

	if goals[0].ProgressValue != 1 || goals[0].TargetValue != 10 {
		t.Errorf("goals mutated: %+v", goals[0])
	}
	if reminders[0].Status != models.ReminderPending {
		t.Errorf("reminders mutated: %+v", reminders[0])
	}
}
