package models

import "time"

// ReminderStatus is the lifecycle state of a reminder. Transitions are
// externally driven: nothing in this system derives "missed" from an
// elapsed due date.
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderCompleted ReminderStatus = "completed"
	ReminderMissed    ReminderStatus = "missed"
)

// ReminderCategory enumerates the reminder kinds.
type ReminderCategory string

const (
	CategoryCheckup     ReminderCategory = "checkup"
	CategoryVaccination ReminderCategory = "vaccination"
	CategoryMedication  ReminderCategory = "medication"
	CategoryOther       ReminderCategory = "other"
)

// Reminder represents a dated health task such as a checkup or vaccination.
type Reminder struct {
	// ID is the unique identifier for the reminder (UUID format).
	ID string `json:"id"`

	// UserID is the account that owns this reminder.
	UserID string `json:"userId"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// DueDate is the day the reminder is due, YYYY-MM-DD.
	DueDate string `json:"dueDate"`

	Status   ReminderStatus   `json:"status"`
	Category ReminderCategory `json:"category"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReminderUpdate carries the fields a reminder update may change.
// Nil pointers leave the existing value untouched; identity fields
// (ID, UserID) are not updatable.
type ReminderUpdate struct {
	Title       *string           `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string           `json:"description,omitempty"`
	DueDate     *string           `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status      *ReminderStatus   `json:"status,omitempty" validate:"omitempty,oneof=pending completed missed"`
	Category    *ReminderCategory `json:"category,omitempty" validate:"omitempty,oneof=checkup vaccination medication other"`
}
