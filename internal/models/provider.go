package models

// ComplianceStatus is the provider-facing triage label derived from a
// patient's current-day goals and reminders.
type ComplianceStatus string

const (
	StatusOnTrack        ComplianceStatus = "on-track"
	StatusNeedsAttention ComplianceStatus = "needs-attention"
	StatusMissedCheckup  ComplianceStatus = "missed-checkup"
)

// PatientSummary is one row of the provider dashboard.
type PatientSummary struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Email             string           `json:"email"`
	LastActivity      string           `json:"lastActivity,omitempty"`
	ComplianceStatus  ComplianceStatus `json:"complianceStatus"`
	GoalsCompleted    int              `json:"goalsCompleted"`
	TotalGoals        int              `json:"totalGoals"`
	UpcomingReminders int              `json:"upcomingReminders"`
	MissedReminders   int              `json:"missedReminders"`
}

// PatientDetails is the expanded patient view for providers.
type PatientDetails struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Profile   Profile    `json:"profile"`
	Goals     []Goal     `json:"goals"`
	Reminders []Reminder `json:"reminders"`
}
