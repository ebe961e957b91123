package models

import "time"

// AuditAction is the closed set of auditable actions.
type AuditAction string

const (
	ActionLogin              AuditAction = "login"
	ActionLogout             AuditAction = "logout"
	ActionViewProfile        AuditAction = "viewProfile"
	ActionUpdateProfile      AuditAction = "updateProfile"
	ActionViewGoals          AuditAction = "viewGoals"
	ActionCreateGoal         AuditAction = "createGoal"
	ActionUpdateGoal         AuditAction = "updateGoal"
	ActionDeleteGoal         AuditAction = "deleteGoal"
	ActionViewReminders      AuditAction = "viewReminders"
	ActionCreateReminder     AuditAction = "createReminder"
	ActionUpdateReminder     AuditAction = "updateReminder"
	ActionDeleteReminder     AuditAction = "deleteReminder"
	ActionViewPatients       AuditAction = "viewPatients"
	ActionViewPatientDetails AuditAction = "viewPatientDetails"
)

// AuditEntry records one sensitive action for traceability.
// Entries are append-only: never mutated or deleted.
type AuditEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// UserID is the actor who performed the action.
	UserID string `json:"userId"`

	Action AuditAction `json:"action"`

	// TargetResource names what was acted on, e.g. "goal:<id>".
	TargetResource string `json:"targetResource,omitempty"`

	// Metadata holds optional action-specific details.
	Metadata map[string]any `json:"metadata,omitempty"`

	IPAddress string `json:"ipAddress,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}
