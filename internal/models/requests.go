package models

// Request payloads with their validation constraints. The `validate` tags
// are checked by internal/validation before any payload reaches the store;
// the `message` tags supply the human-readable text surfaced on the first
// violation.

// InsertUser is the registration payload.
type InsertUser struct {
	Email       string `json:"email" validate:"required,email" message:"Please enter a valid email address"`
	Password    string `json:"password" validate:"required,min=8" message:"Password must be at least 8 characters"`
	Name        string `json:"name" validate:"required,min=2" message:"Name must be at least 2 characters"`
	Role        Role   `json:"role" validate:"required,oneof=patient provider" message:"Role must be patient or provider"`
	DataConsent bool   `json:"dataConsent" validate:"eq=true" message:"You must consent to data usage to register"`
}

// LoginInput is the login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email" message:"Please enter a valid email address"`
	Password string `json:"password" validate:"required" message:"Password is required"`
}

// InsertGoal is the goal creation payload. Date defaults to today when empty.
type InsertGoal struct {
	GoalType      GoalType `json:"goalType" validate:"required,oneof=steps water sleep activeTime" message:"Goal type must be one of steps, water, sleep, activeTime"`
	TargetValue   float64  `json:"targetValue" validate:"gt=0" message:"Target must be a positive number"`
	ProgressValue float64  `json:"progressValue" validate:"gte=0" message:"Progress cannot be negative"`
	Unit          string   `json:"unit" validate:"required" message:"Unit is required"`
	Date          string   `json:"date" validate:"omitempty,datetime=2006-01-02" message:"Date must be YYYY-MM-DD"`
}

// UpdateGoal is the goal update payload: progress only, by design. The value
// is a required pointer so a body without progressValue is rejected instead
// of zeroing the stored progress.
type UpdateGoal struct {
	ProgressValue *float64 `json:"progressValue" validate:"required,gte=0" message:"Progress must be a non-negative number"`
}

// InsertReminder is the reminder creation payload.
type InsertReminder struct {
	Title       string           `json:"title" validate:"required" message:"Title is required"`
	Description string           `json:"description"`
	DueDate     string           `json:"dueDate" validate:"required,datetime=2006-01-02" message:"Due date must be YYYY-MM-DD"`
	Category    ReminderCategory `json:"category" validate:"omitempty,oneof=checkup vaccination medication other" message:"Category must be one of checkup, vaccination, medication, other"`
}

// UpdateProfile is the profile update payload. Nil fields are left unchanged.
type UpdateProfile struct {
	Name    *string        `json:"name,omitempty" validate:"omitempty,min=2" message:"Name must be at least 2 characters"`
	Profile *ProfileUpdate `json:"profile,omitempty"`
}

// ProfileUpdate carries partial profile changes; nil pointers keep the
// existing values.
type ProfileUpdate struct {
	DateOfBirth      *string   `json:"dateOfBirth,omitempty"`
	Allergies        *[]string `json:"allergies,omitempty"`
	Medications      *[]string `json:"medications,omitempty"`
	EmergencyContact *string   `json:"emergencyContact,omitempty"`
	BloodType        *string   `json:"bloodType,omitempty"`
}
